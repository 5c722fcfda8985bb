package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDuctLeakagePer100(t *testing.T) {
	tests := []struct {
		name     string
		cfm      float64
		sqft     float64
		expected float64
	}{
		{name: "typical home", cfm: 90, sqft: 1800, expected: 5},
		{name: "exactly at limit", cfm: 144, sqft: 1800, expected: 8},
		{name: "zero area", cfm: 90, sqft: 0, expected: 0},
		{name: "negative area", cfm: 90, sqft: -10, expected: 0},
		{name: "zero leakage", cfm: 0, sqft: 1800, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, DuctLeakagePer100(tt.cfm, tt.sqft), 1e-9)
		})
	}
}

func TestAllowableDuctLeakage(t *testing.T) {
	tests := []struct {
		name     string
		sqft     float64
		rate     float64
		minimum  float64
		expected float64
	}{
		{name: "rate governs", sqft: 1800, rate: 8, minimum: 80, expected: 144},
		{name: "minimum governs small home", sqft: 900, rate: 8, minimum: 80, expected: 80},
		{name: "footnote 41 rate", sqft: 1800, rate: 12, minimum: 120, expected: 216},
		{name: "zero area falls back to minimum", sqft: 0, rate: 8, minimum: 80, expected: 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, AllowableDuctLeakage(tt.sqft, tt.rate, tt.minimum), 1e-9)
		})
	}
}

func TestCFMPerTon(t *testing.T) {
	assert.InDelta(t, 400.0, CFMPerTon(1400, 3.5), 1e-9)
	assert.Zero(t, CFMPerTon(1400, 0))
	assert.Zero(t, CFMPerTon(1400, -1))
}

func TestTotalExternalStatic(t *testing.T) {
	assert.InDelta(t, 0.35, TotalExternalStatic(0.15, 0.20), 1e-9)
	// Gauge readings are often recorded negative on the return side.
	assert.InDelta(t, 0.35, TotalExternalStatic(-0.15, 0.20), 1e-9)
	assert.Zero(t, TotalExternalStatic(0, 0))
}

func TestACH50(t *testing.T) {
	// 1000 CFM50 against 1800 sqft at 8 ft ceilings.
	assert.InDelta(t, 1000.0*60/(1800*8), ACH50(1000, 1800, 8), 1e-9)
	assert.Zero(t, ACH50(1000, 0, 8))
	assert.Zero(t, ACH50(1000, 1800, 0))
}

func TestNaturalACH(t *testing.T) {
	assert.InDelta(t, 0.25, NaturalACH(4.25, DefaultACHDivisor), 1e-9)
	assert.Zero(t, NaturalACH(0, DefaultACHDivisor))
	assert.Zero(t, NaturalACH(4.25, 0))
}

func TestRecommendedTonnage(t *testing.T) {
	assert.InDelta(t, 3.6, RecommendedTonnage(1800, DefaultTonnageFactor), 1e-9)
	assert.Zero(t, RecommendedTonnage(0, DefaultTonnageFactor))
}

func TestRequiredVentilationCFM(t *testing.T) {
	tests := []struct {
		name     string
		sqft     float64
		bedrooms int
		expected float64
	}{
		{name: "three bedrooms", sqft: 1800, bedrooms: 3, expected: 48},
		{name: "bedrooms default to two", sqft: 1800, bedrooms: 0, expected: 40.5},
		{name: "zero area still ventilates bedrooms", sqft: 0, bedrooms: 2, expected: 22.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, RequiredVentilationCFM(tt.sqft, tt.bedrooms), 1e-9)
		})
	}
}

func TestTightnessBand(t *testing.T) {
	assert.Equal(t, "Tight", TightnessBand(3.2))
	assert.Equal(t, "Average", TightnessBand(5.0))
	assert.Equal(t, "Leaky", TightnessBand(7.0))
}
