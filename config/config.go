// Package config loads and validates the YAML configuration surface for
// the line planning core: planning parameters and output settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/WonJayne/ivt-line-planning-app/model"
	"gopkg.in/yaml.v3"
)

// PlannerConfig is the complete on-disk configuration for a planning run.
type PlannerConfig struct {
	Planner PlannerSettings `yaml:"planner"`
	Output  OutputConfig    `yaml:"output"`
	Logging LoggingConfig   `yaml:"logging"`
}

// PlannerSettings mirrors model.LinePlanningParameters so a run's cost
// weights, timing constants and demand-handling knobs can be configured
// without recompiling the binary.
type PlannerSettings struct {
	EgressTimeWeight           float64 `yaml:"egressTimeWeight"`
	WaitingTimeWeight          float64 `yaml:"waitingTimeWeight"`
	InVehicleTimeWeight        float64 `yaml:"inVehicleTimeWeight"`
	WalkingTimeWeight          float64 `yaml:"walkingTimeWeight"`
	DwellTimeAtTerminalSeconds int64   `yaml:"dwellTimeAtTerminalSeconds"`
	PeriodDurationSeconds      int64   `yaml:"periodDurationSeconds"`
	VehicleCostPerPeriod       int     `yaml:"vehicleCostPerPeriod"`
	PermittedFrequencies       []int   `yaml:"permittedFrequencies"`
	DemandScaling              float64 `yaml:"demandScaling"`
	DemandAssociationRadius    float64 `yaml:"demandAssociationRadius"`
	WalkingSpeedBetweenStations float64 `yaml:"walkingSpeedBetweenStations"`
	MaximalWalkingDistance     float64 `yaml:"maximalWalkingDistance"`
	MaximalNumberOfVehicles    *int    `yaml:"maximalNumberOfVehicles,omitempty"`
}

// ToParameters converts the on-disk settings into the domain type the
// LPN builder and MILP assembler take, expanding second counts into
// time.Duration and int frequencies into model.LineFrequency.
func (s PlannerSettings) ToParameters() model.LinePlanningParameters {
	frequencies := make([]model.LineFrequency, len(s.PermittedFrequencies))
	for i, f := range s.PermittedFrequencies {
		frequencies[i] = model.LineFrequency(f)
	}

	return model.LinePlanningParameters{
		EgressTimeWeight:            s.EgressTimeWeight,
		WaitingTimeWeight:           s.WaitingTimeWeight,
		InVehicleTimeWeight:         s.InVehicleTimeWeight,
		WalkingTimeWeight:           s.WalkingTimeWeight,
		DwellTimeAtTerminal:         time.Duration(s.DwellTimeAtTerminalSeconds) * time.Second,
		PeriodDuration:              time.Duration(s.PeriodDurationSeconds) * time.Second,
		VehicleCostPerPeriod:        model.CHF(s.VehicleCostPerPeriod),
		PermittedFrequencies:        frequencies,
		DemandScaling:               s.DemandScaling,
		DemandAssociationRadius:     model.Meter(s.DemandAssociationRadius),
		WalkingSpeedBetweenStations: model.MeterPerSecond(s.WalkingSpeedBetweenStations),
		MaximalWalkingDistance:      model.Meter(s.MaximalWalkingDistance),
		MaximalNumberOfVehicles:     s.MaximalNumberOfVehicles,
	}
}

// OutputConfig holds output settings. Validate checks Format and
// MaxEntries, but summary.Render does not read them; the lineplanner
// command reads only LPDumpPath.
type OutputConfig struct {
	Format     string `yaml:"format"`     // text, json
	MaxEntries int    `yaml:"maxEntries"` // 0 = unlimited
	LPDumpPath string `yaml:"lpDumpPath"` // optional diagnostic LP dump on infeasibility
}

// LoggingConfig configures the logging package's default logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// DefaultConfig returns a configuration with the teacher repo's planning
// constants sized for a typical 1-hour peak period.
func DefaultConfig() *PlannerConfig {
	return &PlannerConfig{
		Planner: PlannerSettings{
			EgressTimeWeight:            1.0,
			WaitingTimeWeight:           2.0,
			InVehicleTimeWeight:         1.0,
			WalkingTimeWeight:           1.5,
			DwellTimeAtTerminalSeconds:  300,
			PeriodDurationSeconds:       3600,
			VehicleCostPerPeriod:        100,
			PermittedFrequencies:        []int{2, 4, 6, 8, 10, 12},
			DemandScaling:               1.0,
			DemandAssociationRadius:     500,
			WalkingSpeedBetweenStations: 1.4,
			MaximalWalkingDistance:      750,
			MaximalNumberOfVehicles:     nil,
		},
		Output: OutputConfig{
			Format:     "text",
			MaxEntries: 0,
			LPDumpPath: "",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig loads configuration from a YAML file, falling back to
// DefaultConfig when configPath is empty.
func LoadConfig(configPath string) (*PlannerConfig, error) {
	cfg := DefaultConfig()

	if configPath == "" {
		return cfg, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	if !filepath.IsAbs(configPath) && strings.Contains(configPath, "..") {
		return nil, fmt.Errorf("invalid config file path: %s", configPath)
	}

	data, err := os.ReadFile(configPath) //nolint:gosec // path validated above
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes the configuration to a YAML file, creating parent
// directories as needed.
func (c *PlannerConfig) SaveConfig(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}

// Validate checks the configuration for internally inconsistent values.
func (c *PlannerConfig) Validate() error {
	p := c.Planner

	if p.DwellTimeAtTerminalSeconds <= 0 {
		return fmt.Errorf("planner.dwellTimeAtTerminalSeconds must be positive")
	}
	if p.PeriodDurationSeconds <= 0 {
		return fmt.Errorf("planner.periodDurationSeconds must be positive")
	}
	if p.VehicleCostPerPeriod < 0 {
		return fmt.Errorf("planner.vehicleCostPerPeriod cannot be negative")
	}
	if len(p.PermittedFrequencies) == 0 {
		return fmt.Errorf("planner.permittedFrequencies cannot be empty")
	}
	for _, f := range p.PermittedFrequencies {
		if f <= 0 {
			return fmt.Errorf("planner.permittedFrequencies entries must be positive, got %d", f)
		}
	}
	if p.DemandScaling <= 0 {
		return fmt.Errorf("planner.demandScaling must be positive")
	}
	if p.WalkingSpeedBetweenStations <= 0 {
		return fmt.Errorf("planner.walkingSpeedBetweenStations must be positive")
	}
	if p.MaximalWalkingDistance <= 0 {
		return fmt.Errorf("planner.maximalWalkingDistance must be positive")
	}
	if p.MaximalNumberOfVehicles != nil && *p.MaximalNumberOfVehicles <= 0 {
		return fmt.Errorf("planner.maximalNumberOfVehicles must be positive when set")
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("invalid output format: %s (valid: text, json)", c.Output.Format)
	}
	if c.Output.MaxEntries < 0 {
		return fmt.Errorf("output.maxEntries cannot be negative")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (valid: debug, info, warn, error)", c.Logging.Level)
	}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s (valid: text, json)", c.Logging.Format)
	}

	return nil
}

// GenerateDefaultConfigFile writes DefaultConfig() to configPath.
func GenerateDefaultConfigFile(configPath string) error {
	return DefaultConfig().SaveConfig(configPath)
}
