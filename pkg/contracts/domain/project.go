package domain

import "strings"

// Project represents one home's energy-performance record in canonical form.
// Every field is optional: text and date fields are empty strings when absent,
// numeric fields are nil pointers. Dates are normalized "YYYY-MM-DD" strings.
//
// Field provenance is the builder's SQL/Excel exports and REM/Rate interchange
// files; the canonical names (Subdivision1, TDLCFM, ...) live in the schema
// package alongside the alias table that maps external headers onto them.
type Project struct {
	// Identity
	Region        string   `json:"region,omitempty"`
	Subdivision   string   `json:"subdivision,omitempty"`
	Lot           string   `json:"lot,omitempty"`
	StreetAddress string   `json:"street_address,omitempty"`
	City          string   `json:"city,omitempty"`
	State         string   `json:"state,omitempty"`
	ZipCode       string   `json:"zip_code,omitempty"`
	Plan          string   `json:"plan,omitempty"`
	LivingArea    *float64 `json:"living_area,omitempty"`
	PermitNo      string   `json:"permit_no,omitempty"`

	// Milestone dates
	PDWCreated    string `json:"pdw_created,omitempty"`
	FinalCreated  string `json:"final_created,omitempty"`
	Finalization  string `json:"finalization,omitempty"`
	ConstComplete string `json:"const_complete,omitempty"`
	TargetClosing string `json:"target_closing,omitempty"`
	ActualClosing string `json:"actual_closing,omitempty"`

	// Personnel
	Super string `json:"super,omitempty"`
	Tech  string `json:"tech,omitempty"`
	RTIN  string `json:"rtin,omitempty"`

	// Status
	PDWFails string `json:"pdw_fails,omitempty"`
	PassFail string `json:"pass_fail,omitempty"`

	// HVAC equipment
	ElecOption        string   `json:"elec_option,omitempty"`
	Supplier          string   `json:"supplier,omitempty"`
	Tonnage           *float64 `json:"tonnage,omitempty"`
	RefrigeratorModel string   `json:"refrigerator_model,omitempty"`
	RangeModel        string   `json:"range_model,omitempty"`

	// Duct testing
	TotalDuctLeakage *float64 `json:"total_duct_leakage,omitempty"` // CFM25
	LeakageToOutside *float64 `json:"leakage_to_outside,omitempty"` // CFM25
	BlowerDoorCFM    *float64 `json:"blower_door_cfm,omitempty"`    // CFM50
	MechVentCFM      *float64 `json:"mech_vent_cfm,omitempty"`
	ReturnCount      *float64 `json:"return_count,omitempty"`

	// Airflow and pressures
	ReturnStatic    *float64 `json:"return_static,omitempty"` // IWC
	SupplyStatic    *float64 `json:"supply_static,omitempty"` // IWC
	BlowerCFM       *float64 `json:"blower_cfm,omitempty"`
	MeasuredCFM     *float64 `json:"measured_cfm,omitempty"`
	FanWattDraw     *float64 `json:"fan_watt_draw,omitempty"`
	MeasuredWattage *float64 `json:"measured_wattage,omitempty"`
	Charge          *float64 `json:"charge,omitempty"` // variance, fraction

	// Bath fan ventilation
	BathFan1CFM *float64 `json:"bath_fan_1_cfm,omitempty"`
	BathFan2CFM *float64 `json:"bath_fan_2_cfm,omitempty"`
	BathFan3CFM *float64 `json:"bath_fan_3_cfm,omitempty"`
	BathFanPass string   `json:"bath_fan_pass,omitempty"`
}

// IsEmpty reports whether the record carries no data at all. Both the
// compliance checker and the interchange writer treat such records as the
// "no data" case.
func (p *Project) IsEmpty() bool {
	if p == nil {
		return true
	}
	return *p == Project{}
}

// Living returns the conditioned floor area, or 0 when it is absent.
func (p *Project) Living() float64 {
	if p == nil || p.LivingArea == nil {
		return 0
	}
	return *p.LivingArea
}

// Returns reports the HVAC return register count, or 0 when absent.
func (p *Project) Returns() int {
	if p == nil || p.ReturnCount == nil {
		return 0
	}
	return int(*p.ReturnCount)
}

// IsFailed reports whether the field team marked this project as a failed
// inspection, regardless of what the computed compliance checks say.
func (p *Project) IsFailed() bool {
	return p != nil && strings.EqualFold(p.PassFail, "fail")
}

// Float is a convenience constructor for optional numeric fields, used by
// tests and loaders.
func Float(v float64) *float64 { return &v }
