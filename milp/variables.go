package milp

import "github.com/WonJayne/ivt-line-planning-app/model"

// LineVarKey identifies a binary "line l runs at frequency f" variable.
type LineVarKey struct {
	Line      model.LineNr
	Frequency model.LineFrequency
}

// FlowVarKey identifies a continuous "flow from origin across edge"
// variable. EdgeIndex refers to the owning Problem's Net.AllLinks()
// ordering.
type FlowVarKey struct {
	Origin    model.StationName
	EdgeIndex int
}
