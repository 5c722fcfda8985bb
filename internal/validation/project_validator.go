package validation

import (
	"log/slog"

	"ratersync/pkg/contracts/domain"
)

// ProjectValidator checks project records for the fields a submission
// needs before export. Errors block export, warnings do not.
type ProjectValidator struct {
	logger *slog.Logger

	// MinLivingArea is the smallest conditioned floor area accepted as
	// plausible. Anything below it is treated as missing or mis-keyed.
	MinLivingArea float64
}

// NewProjectValidator creates a validator with the default thresholds.
func NewProjectValidator(logger *slog.Logger) *ProjectValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProjectValidator{
		logger:        logger,
		MinLivingArea: 500,
	}
}

// Validate reports completeness problems for a single project record.
func (v *ProjectValidator) Validate(p *domain.Project) domain.ValidationResult {
	result := domain.ValidationResult{IsValid: true}

	if p == nil || p.IsEmpty() {
		result.Errors = append(result.Errors, "No project data")
		result.IsValid = false
		return result
	}

	if p.Subdivision == "" {
		result.Errors = append(result.Errors, "Missing: Subdivision")
	}
	if p.Lot == "" {
		result.Errors = append(result.Errors, "Missing: Lot")
	}
	if p.LivingArea == nil || *p.LivingArea < v.MinLivingArea {
		result.Errors = append(result.Errors, "Missing/invalid: Living sqft")
	}
	if p.StreetAddress == "" {
		result.Errors = append(result.Errors, "Missing: Address")
	}
	if p.IsFailed() {
		result.Errors = append(result.Errors, "Project marked FAIL")
	}

	if p.TotalDuctLeakage == nil {
		result.Warnings = append(result.Warnings, "Missing: TDLCFM")
	}
	if p.LeakageToOutside == nil {
		result.Warnings = append(result.Warnings, "Missing: LTOCFM")
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

// ValidateBatch runs Validate over every project in the batch, keyed
// the same way the batch is.
func (v *ProjectValidator) ValidateBatch(batch *domain.Batch) map[string]domain.ValidationResult {
	results := make(map[string]domain.ValidationResult, batch.Len())
	for _, key := range batch.Keys() {
		r := v.Validate(batch.Get(key))
		if !r.IsValid {
			v.logger.Warn("Project failed completeness validation",
				slog.String("project", key),
				slog.Int("errors", len(r.Errors)))
		}
		results[key] = r
	}
	return results
}
