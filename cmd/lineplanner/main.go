package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/WonJayne/ivt-line-planning-app/config"
	"github.com/WonJayne/ivt-line-planning-app/logging"
	"github.com/WonJayne/ivt-line-planning-app/milp"
	"github.com/WonJayne/ivt-line-planning-app/model"
	"github.com/WonJayne/ivt-line-planning-app/network"
	"github.com/WonJayne/ivt-line-planning-app/summary"
	"github.com/spf13/cobra"
)

var (
	configFile     string
	generateConfig string
	lpDumpPath     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lineplanner",
		Short: "Line planning demo: builds a network, assembles a MILP and prints its summary",
		Long: `lineplanner wires the line planning core end to end against a small
built-in demand scenario: it builds the Line Planning Network, assembles
the MILP formulation, solves it with a bundled heuristic demo solver
(not a certified MILP backend), and prints the resulting summary.

It does not ingest CSV or GTFS data; that remains the job of an external
ingestion pipeline feeding a PlanningScenario into this core.`,
		RunE: runDemo,
	}

	rootCmd.Flags().StringVar(&configFile, "config", "", "Planner configuration file (YAML); default built-in config if unset")
	rootCmd.Flags().StringVar(&lpDumpPath, "lp-dump", "", "Write the assembled LP to this path if the demo solver reports infeasibility")

	generateConfigCmd := &cobra.Command{
		Use:   "generate-config [file]",
		Short: "Generate a default planner configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "lineplanner.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			return config.GenerateDefaultConfigFile(path)
		},
	}
	rootCmd.AddCommand(generateConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logging.NewLogger(logging.LoggerConfig{
		Level:  logging.ParseLogLevel(cfg.Logging.Level),
		Format: cfg.Logging.Format,
	})
	log.ConfigurationLoaded(configFile, 2)

	params := cfg.Planner.ToParameters()
	scenario, err := demoScenario()
	if err != nil {
		return fmt.Errorf("build demo scenario: %w", err)
	}

	if err := scenario.CheckConsistency(); err != nil {
		return fmt.Errorf("inconsistent scenario: %w", err)
	}

	log.BuildStart(len(scenario.BusLines), len(scenario.WalkableDistances))
	start := time.Now()
	net, err := network.Build(scenario, params)
	if err != nil {
		return fmt.Errorf("build network: %w", err)
	}
	log.BuildComplete(time.Since(start), net.NodeCount(), net.LinkCount())

	weights, err := network.Weights(net, params)
	if err != nil {
		return fmt.Errorf("compute weights: %w", err)
	}

	log.AssembleStart(len(scenario.DemandMatrix.AllOrigins()), net.LinkCount())
	start = time.Now()
	problem, err := milp.Assemble(scenario, net, weights, params)
	if err != nil {
		return fmt.Errorf("assemble problem: %w", err)
	}
	log.AssembleComplete(time.Since(start), problem.NumVars, len(problem.Constraints))

	log.SolveStart()
	start = time.Now()
	outcome, err := demoSolver{}.Solve(context.Background(), problem)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	log.SolveComplete(time.Since(start), outcome.Status.String())

	if outcome.Status == milp.StatusInfeasible {
		dump := lpDumpPath
		if dump == "" {
			dump = cfg.Output.LPDumpPath
		}
		if dump != "" {
			if err := problem.WriteLP(dump); err != nil {
				log.WithError(err).Warn("failed to write LP dump")
			} else {
				log.SolverInfeasible(dump)
			}
		}
	}

	result, err := milp.Extract(problem, outcome)
	if err != nil {
		return fmt.Errorf("extract solution: %w", err)
	}

	sol, err := result.Solution()
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "planning run failed: %v\n", err)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), summary.Render(scenario, params, sol))
	return nil
}

// demoScenario is a small, self-contained two-line scenario: a main
// line running A-B-C-D in both directions, and an express line
// covering A-D directly, with peak demand from A to D.
func demoScenario() (model.PlanningScenario, error) {
	mkStation := func(name model.StationName) (model.Station, error) {
		return model.NewStation(name, []model.PointIn2D{{Lat: 0, Long: 0}}, nil, nil, nil)
	}

	var stations []model.Station
	for _, name := range []model.StationName{"A", "B", "C", "D"} {
		st, err := mkStation(name)
		if err != nil {
			return model.PlanningScenario{}, err
		}
		stations = append(stations, st)
	}

	forward, err := model.NewDirection("forward", []model.StationName{"A", "B", "C", "D"},
		[]time.Duration{300 * time.Second, 300 * time.Second, 300 * time.Second}, nil)
	if err != nil {
		return model.PlanningScenario{}, err
	}
	backward, err := model.NewDirection("backward", []model.StationName{"D", "C", "B", "A"},
		[]time.Duration{300 * time.Second, 300 * time.Second, 300 * time.Second}, nil)
	if err != nil {
		return model.PlanningScenario{}, err
	}
	line1, err := model.NewBusLine(1, "Main", forward, backward, 80, []model.LineFrequency{2, 4, 6})
	if err != nil {
		return model.PlanningScenario{}, err
	}

	directAD, err := model.NewDirection("AD", []model.StationName{"A", "D"}, []time.Duration{500 * time.Second}, nil)
	if err != nil {
		return model.PlanningScenario{}, err
	}
	directDA, err := model.NewDirection("DA", []model.StationName{"D", "A"}, []time.Duration{500 * time.Second}, nil)
	if err != nil {
		return model.PlanningScenario{}, err
	}
	line2, err := model.NewBusLine(2, "Express", directAD, directDA, 60, []model.LineFrequency{2, 4, 6})
	if err != nil {
		return model.PlanningScenario{}, err
	}

	demand := model.NewDemandMatrix(map[model.StationName]map[model.StationName]float64{
		"A": {"D": 120, "B": 20},
		"B": {"C": 15},
	})

	return model.PlanningScenario{
		DemandMatrix: demand,
		BusLines:     []model.BusLine{line1, line2},
		Stations:     stations,
	}, nil
}
