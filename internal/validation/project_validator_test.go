package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ratersync/pkg/contracts/domain"
)

func completeProject() *domain.Project {
	return &domain.Project{
		Subdivision:      "Oakwood",
		Lot:              "12",
		StreetAddress:    "123 Main St",
		LivingArea:       domain.Float(1800),
		TotalDuctLeakage: domain.Float(80),
		LeakageToOutside: domain.Float(30),
		PassFail:         "PASS",
	}
}

func TestValidateCompleteProject(t *testing.T) {
	v := NewProjectValidator(nil)
	result := v.Validate(completeProject())

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
	assert.Zero(t, result.TotalIssues())
}

func TestValidateNoData(t *testing.T) {
	v := NewProjectValidator(nil)

	for _, p := range []*domain.Project{nil, {}} {
		result := v.Validate(p)
		assert.False(t, result.IsValid)
		assert.Equal(t, []string{"No project data"}, result.Errors)
		assert.Empty(t, result.Warnings)
	}
}

func TestValidateMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Project)
		wantErr string
	}{
		{"missing subdivision", func(p *domain.Project) { p.Subdivision = "" }, "Missing: Subdivision"},
		{"missing lot", func(p *domain.Project) { p.Lot = "" }, "Missing: Lot"},
		{"missing living area", func(p *domain.Project) { p.LivingArea = nil }, "Missing/invalid: Living sqft"},
		{"implausible living area", func(p *domain.Project) { p.LivingArea = domain.Float(120) }, "Missing/invalid: Living sqft"},
		{"missing address", func(p *domain.Project) { p.StreetAddress = "" }, "Missing: Address"},
		{"marked FAIL", func(p *domain.Project) { p.PassFail = "Fail" }, "Project marked FAIL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewProjectValidator(nil)
			p := completeProject()
			tt.mutate(p)

			result := v.Validate(p)
			assert.False(t, result.IsValid)
			assert.Contains(t, result.Errors, tt.wantErr)
		})
	}
}

func TestValidateLivingAreaAtThreshold(t *testing.T) {
	v := NewProjectValidator(nil)
	p := completeProject()
	p.LivingArea = domain.Float(500)

	result := v.Validate(p)
	assert.True(t, result.IsValid)
}

func TestValidateWarnings(t *testing.T) {
	v := NewProjectValidator(nil)
	p := completeProject()
	p.TotalDuctLeakage = nil
	p.LeakageToOutside = nil

	result := v.Validate(p)
	assert.True(t, result.IsValid, "warnings must not block export")
	assert.ElementsMatch(t, []string{
		"Missing: TDLCFM",
		"Missing: LTOCFM",
	}, result.Warnings)
	assert.Equal(t, 2, result.TotalIssues())
}

func TestValidateBatchKeysResults(t *testing.T) {
	v := NewProjectValidator(nil)
	batch := domain.NewBatch()
	require.True(t, batch.Add("Oakwood_Lot12", completeProject()))
	require.True(t, batch.Add("Oakwood_Lot13", &domain.Project{Subdivision: "Oakwood"}))

	results := v.ValidateBatch(batch)
	require.Len(t, results, 2)
	assert.True(t, results["Oakwood_Lot12"].IsValid)
	assert.False(t, results["Oakwood_Lot13"].IsValid)
}
