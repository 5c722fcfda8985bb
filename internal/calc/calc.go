// Package calc holds the pure numeric formulas used by the compliance engine
// and ad-hoc analysis. Every function is total: non-positive or missing
// denominators yield 0 instead of an error.
package calc

import "math"

// Defaults shared with the ENERGY STAR duct leakage checks.
const (
	DefaultLeakageRate    = 8.0  // CFM25 per 100 sqft
	DefaultLeakageMinimum = 80.0 // CFM25 floor
	DefaultACHDivisor     = 17.0 // LBL n-factor
	DefaultTonnageFactor  = 500.0
	DefaultCeilingHeight  = 8.0 // ft
)

// DuctLeakagePer100 converts a leakage measurement to CFM25 per 100 sqft of
// conditioned area.
func DuctLeakagePer100(cfm, sqft float64) float64 {
	if sqft <= 0 {
		return 0
	}
	return cfm / sqft * 100
}

// AllowableDuctLeakage is the permitted leakage for a given area: the
// per-area rate with an absolute floor. With a non-positive area only the
// floor applies.
func AllowableDuctLeakage(sqft, rate, minimum float64) float64 {
	if sqft <= 0 {
		return minimum
	}
	return math.Max(sqft/100*rate, minimum)
}

// CFMPerTon is the airflow rate per ton of cooling capacity.
func CFMPerTon(cfm, tons float64) float64 {
	if tons <= 0 {
		return 0
	}
	return cfm / tons
}

// TotalExternalStatic sums the magnitudes of the return and supply static
// pressures. Callers should treat a value computed from a single present
// side with care: it is indistinguishable from a genuine small two-sided
// total.
func TotalExternalStatic(returnIWC, supplyIWC float64) float64 {
	return math.Abs(returnIWC) + math.Abs(supplyIWC)
}

// ACH50 is air changes per hour at 50 Pa for the given blower door reading,
// floor area and ceiling height.
func ACH50(bdCFM50, sqft, ceilingHeight float64) float64 {
	if sqft <= 0 || ceilingHeight <= 0 {
		return 0
	}
	return bdCFM50 * 60 / (sqft * ceilingHeight)
}

// NaturalACH estimates natural air changes from ACH50 using the n-factor
// divisor.
func NaturalACH(ach50, n float64) float64 {
	if ach50 == 0 || n <= 0 {
		return 0
	}
	return ach50 / n
}

// RecommendedTonnage is the rule-of-thumb cooling capacity for an area.
func RecommendedTonnage(sqft, factor float64) float64 {
	if sqft <= 0 || factor <= 0 {
		return 0
	}
	return sqft / factor
}

// RequiredVentilationCFM is the ASHRAE 62.2 continuous ventilation
// requirement. Bedrooms default to 2 when absent or non-positive.
func RequiredVentilationCFM(sqft float64, bedrooms int) float64 {
	if bedrooms <= 0 {
		bedrooms = 2
	}
	return 0.01*sqft + 7.5*float64(bedrooms+1)
}

// TightnessBand labels an ACH50 value the way field techs read it.
func TightnessBand(ach50 float64) string {
	switch {
	case ach50 < 5:
		return "Tight"
	case ach50 < 7:
		return "Average"
	default:
		return "Leaky"
	}
}
