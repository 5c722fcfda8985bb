package domain

// CheckStatus is the tri-state outcome of a single compliance check.
type CheckStatus string

const (
	StatusPass CheckStatus = "PASS"
	StatusFail CheckStatus = "FAIL"
	StatusWarn CheckStatus = "WARN"
)

// ComplianceCheck is one evaluated requirement within a verdict. Value and
// Requirement are pre-formatted display strings; downstream consumers use
// them verbatim.
type ComplianceCheck struct {
	Component   string      `json:"component"`
	Value       string      `json:"value"`
	Requirement string      `json:"requirement"`
	Status      CheckStatus `json:"status"`
}

// ComplianceVerdict is the immutable result of evaluating one project against
// a compliance standard. Overall is FAIL if any check failed, WARN if any
// check warned with none failing, and PASS otherwise. A record with no data
// at all is a hard FAIL with zero checks.
type ComplianceVerdict struct {
	Overall          CheckStatus       `json:"overall"`
	Checks           []ComplianceCheck `json:"checks"`
	PassCount        int               `json:"pass_count"`
	FailCount        int               `json:"fail_count"`
	WarnCount        int               `json:"warn_count"`
	FootnotesApplied []string          `json:"footnotes_applied"`
}

// ValidationResult is the immutable completeness report for one project.
// Warnings never affect validity.
type ValidationResult struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	IsValid  bool     `json:"is_valid"`
}

// TotalIssues returns the combined error and warning count.
func (r *ValidationResult) TotalIssues() int {
	return len(r.Errors) + len(r.Warnings)
}

// RatingType classifies a project's rating maturity.
type RatingType string

const (
	// RatingConfirmed means the final rating file exists and the project passed.
	RatingConfirmed RatingType = "Confirmed"
	// RatingProjected is every other state.
	RatingProjected RatingType = "Projected"
)
