package compliance

import (
	"fmt"
	"math"

	"ratersync/internal/calc"
	"ratersync/pkg/contracts/domain"
)

// Checker evaluates projects against one standard's thresholds.
type Checker struct {
	std *Standard
}

// NewChecker returns a checker bound to the given standard.
func NewChecker(std *Standard) *Checker {
	return &Checker{std: std}
}

// CheckProject evaluates one record. Missing inputs never fail the record:
// a check simply does not run when its inputs are absent. A record with no
// data at all is a hard FAIL with zero checks — "no data" is never a silent
// pass.
func (c *Checker) CheckProject(p *domain.Project) *domain.ComplianceVerdict {
	v := &domain.ComplianceVerdict{Overall: domain.StatusFail}
	if p.IsEmpty() {
		return v
	}
	v.Overall = domain.StatusPass

	living := p.Living()
	footnote41 := p.Returns() >= c.std.ReturnCountThreshold
	if footnote41 {
		v.FootnotesApplied = append(v.FootnotesApplied, "Footnote 41: 3+ returns")
	}

	// Total duct leakage, with footnote-41 relaxed thresholds.
	if p.TotalDuctLeakage != nil && living > 0 {
		rate, minimum := c.std.DuctLeakageTotalRate, c.std.DuctLeakageTotalMin
		if footnote41 {
			rate, minimum = c.std.DuctLeakageTotalRateAlt, c.std.DuctLeakageTotalMinAlt
		}
		allowable := calc.AllowableDuctLeakage(living, rate, minimum)
		status := domain.StatusPass
		if *p.TotalDuctLeakage > allowable {
			status = domain.StatusFail
		}
		v.Checks = append(v.Checks, domain.ComplianceCheck{
			Component:   "Total Duct Leakage (6.4.2)",
			Value:       fmt.Sprintf("%.0f CFM25", *p.TotalDuctLeakage),
			Requirement: fmt.Sprintf("<=%.0f CFM25", allowable),
			Status:      status,
		})
	}

	// Leakage to outside. Footnote 41 does not relax this one.
	if p.LeakageToOutside != nil && living > 0 {
		allowable := calc.AllowableDuctLeakage(living, c.std.DuctLeakageOutsideRate, c.std.DuctLeakageOutsideMin)
		status := domain.StatusPass
		if *p.LeakageToOutside > allowable {
			status = domain.StatusFail
		}
		v.Checks = append(v.Checks, domain.ComplianceCheck{
			Component:   "Duct Leakage to Outside (6.5)",
			Value:       fmt.Sprintf("%.0f CFM25", *p.LeakageToOutside),
			Requirement: fmt.Sprintf("<=%.0f CFM25", allowable),
			Status:      status,
		})
	}

	// Static pressures are advisory: out of range warns, never fails.
	if p.ReturnStatic != nil {
		status := domain.StatusPass
		if math.Abs(*p.ReturnStatic) > c.std.ReturnStaticMax {
			status = domain.StatusWarn
		}
		v.Checks = append(v.Checks, domain.ComplianceCheck{
			Component:   "Return Static (5b.2)",
			Value:       fmt.Sprintf("%.3f IWC", *p.ReturnStatic),
			Requirement: fmt.Sprintf("<=%.2f IWC", c.std.ReturnStaticMax),
			Status:      status,
		})
	}

	if p.SupplyStatic != nil {
		status := domain.StatusPass
		if math.Abs(*p.SupplyStatic) > c.std.SupplyStaticMax {
			status = domain.StatusWarn
		}
		v.Checks = append(v.Checks, domain.ComplianceCheck{
			Component:   "Supply Static (5b.2)",
			Value:       fmt.Sprintf("%.3f IWC", *p.SupplyStatic),
			Requirement: fmt.Sprintf("<=%.2f IWC", c.std.SupplyStaticMax),
			Status:      status,
		})
	}

	if p.Charge != nil {
		status := domain.StatusPass
		if math.Abs(*p.Charge) > c.std.ChargeTolerance {
			status = domain.StatusWarn
		}
		v.Checks = append(v.Checks, domain.ComplianceCheck{
			Component:   "Refrigerant Charge (5a.3)",
			Value:       fmt.Sprintf("%.3f", *p.Charge),
			Requirement: fmt.Sprintf("+/-%.2f", c.std.ChargeTolerance),
			Status:      status,
		})
	}

	// Airflow is three-tier: the inner band passes, the outer band warns,
	// everything beyond fails.
	if p.MeasuredCFM != nil && *p.MeasuredCFM != 0 && p.Tonnage != nil && *p.Tonnage > 0 {
		cpt := calc.CFMPerTon(*p.MeasuredCFM, *p.Tonnage)
		var status domain.CheckStatus
		switch {
		case cpt >= c.std.CFMPerTonMin && cpt <= c.std.CFMPerTonMax:
			status = domain.StatusPass
		case cpt >= c.std.CFMPerTonMin-50 && cpt <= c.std.CFMPerTonMax+50:
			status = domain.StatusWarn
		default:
			status = domain.StatusFail
		}
		v.Checks = append(v.Checks, domain.ComplianceCheck{
			Component:   "Airflow (5a.1)",
			Value:       fmt.Sprintf("%.0f CFM/ton", cpt),
			Requirement: fmt.Sprintf("%.0f-%.0f CFM/ton", c.std.CFMPerTonMin, c.std.CFMPerTonMax),
			Status:      status,
		})
	}

	if p.MechVentCFM != nil {
		status := domain.StatusPass
		if *p.MechVentCFM < c.std.BathFanIntermittentMin {
			status = domain.StatusFail
		}
		v.Checks = append(v.Checks, domain.ComplianceCheck{
			Component:   "Bath Fan (8.2)",
			Value:       fmt.Sprintf("%.0f CFM", *p.MechVentCFM),
			Requirement: fmt.Sprintf(">=%.0f CFM", c.std.BathFanIntermittentMin),
			Status:      status,
		})
	}

	for _, check := range v.Checks {
		switch check.Status {
		case domain.StatusPass:
			v.PassCount++
		case domain.StatusFail:
			v.FailCount++
			v.Overall = domain.StatusFail
		case domain.StatusWarn:
			v.WarnCount++
			if v.Overall == domain.StatusPass {
				v.Overall = domain.StatusWarn
			}
		}
	}
	return v
}
