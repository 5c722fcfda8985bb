package domain

// SubmissionDocument is the terminal export artifact consumed by the rating
// submission service. Field names on the wire are fixed by that service and
// must not change.
type SubmissionDocument struct {
	Homes    []Home             `json:"homes"`
	Metadata SubmissionMetadata `json:"metadata"`
}

// SubmissionMetadata describes one generation run.
type SubmissionMetadata struct {
	Generated string `json:"generated"`
	Source    string `json:"source"`
	Count     int    `json:"count"`
	RunID     string `json:"runId,omitempty"`
}

// Home is one exported project. Optional blocks are omitted entirely when the
// source record lacks the fields that feed them.
type Home struct {
	BuilderHomeID           string               `json:"builderHomeId"`
	RatingType              RatingType           `json:"ratingType"`
	TargetEnergyStarVersion string               `json:"targetEnergyStarVersion"`
	Address                 *HomeAddress         `json:"address,omitempty"`
	GeneralInfo             *GeneralInfo         `json:"generalInfo,omitempty"`
	Infiltration            *Infiltration        `json:"infiltration,omitempty"`
	DistributionSystems     []DistributionSystem `json:"distributionSystems,omitempty"`
}

// HomeAddress is the postal address block.
type HomeAddress struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// GeneralInfo carries conditioned area and orientation. ConditionedFloorArea
// stays null on the wire when the source record has no living area.
type GeneralInfo struct {
	ConditionedFloorArea *float64 `json:"conditionedFloorArea"`
	Orientation          string   `json:"orientation"`
}

// Infiltration is the blower-door result. Unit is always "CFM50".
type Infiltration struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// DistributionSystem is one duct system's leakage figures. The submission
// service expects a zero-based index; we always emit a single system.
type DistributionSystem struct {
	Index                 int      `json:"index"`
	TotalDuctLeakageCFM25 *float64 `json:"totalDuctLeakageCfm25,omitempty"`
	LeakageToOutsideCFM25 *float64 `json:"leakageToOutsideCfm25,omitempty"`
}
