// Package schema defines the canonical field vocabulary shared by every part
// of the pipeline: the fixed set of recognized field names, the alias table
// that maps external spreadsheet headers onto them, and a typed accessor
// registry over domain.Project so loaders and exporters can address fields by
// canonical name.
package schema

import (
	"math"
	"strconv"
	"strings"

	"ratersync/pkg/contracts/domain"
)

// Kind describes how a field's raw value is interpreted.
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindDate
)

// Field is one canonical field: its canonical name, value kind, accepted
// external header spellings, and typed accessors into domain.Project.
type Field struct {
	Name    string
	Kind    Kind
	Aliases []string

	text   func(p *domain.Project) *string
	number func(p *domain.Project) **float64
}

// Apply stores a raw cell value into p. Number fields are float-parsed;
// a value that does not parse is dropped (the typed record cannot carry it)
// and Apply reports false. Empty values are never stored.
func (f Field) Apply(p *domain.Project, raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	if f.Kind == KindNumber {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
		*f.number(p) = &v
		return true
	}
	*f.text(p) = raw
	return true
}

// SetNumber stores v into a number field.
func (f Field) SetNumber(p *domain.Project, v float64) {
	*f.number(p) = &v
}

// Value returns the field's display string and whether it is present.
// Numbers are formatted with the shortest exact representation.
func (f Field) Value(p *domain.Project) (string, bool) {
	if f.Kind == KindNumber {
		fp := *f.number(p)
		if fp == nil {
			return "", false
		}
		return strconv.FormatFloat(*fp, 'f', -1, 64), true
	}
	s := *f.text(p)
	return s, s != ""
}

// Number returns the field's numeric value. Text and date fields always
// report absent.
func (f Field) Number(p *domain.Project) (float64, bool) {
	if f.Kind != KindNumber {
		return 0, false
	}
	fp := *f.number(p)
	if fp == nil {
		return 0, false
	}
	return *fp, true
}

func text(get func(p *domain.Project) *string) func(p *domain.Project) *string {
	return get
}

func num(get func(p *domain.Project) **float64) func(p *domain.Project) **float64 {
	return get
}

// fields is the closed canonical vocabulary, in schema group order:
// identity, dates, personnel, status, HVAC, duct, airflow, bath fan.
var fields = []Field{
	// Identity
	{Name: "Region", Kind: KindText, Aliases: []string{"Region"},
		text: text(func(p *domain.Project) *string { return &p.Region })},
	{Name: "Subdivision1", Kind: KindText, Aliases: []string{"Subdivision1", "Subdivision", "Sub", "SubdivisionName"},
		text: text(func(p *domain.Project) *string { return &p.Subdivision })},
	{Name: "Lot1", Kind: KindText, Aliases: []string{"Lot1", "Lot", "LotNumber", "Lot Number", "LotNo"},
		text: text(func(p *domain.Project) *string { return &p.Lot })},
	{Name: "StreetAddress", Kind: KindText, Aliases: []string{"StreetAddress", "Street Address", "Address", "Street"},
		text: text(func(p *domain.Project) *string { return &p.StreetAddress })},
	{Name: "City", Kind: KindText, Aliases: []string{"City"},
		text: text(func(p *domain.Project) *string { return &p.City })},
	{Name: "State", Kind: KindText, Aliases: []string{"State"},
		text: text(func(p *domain.Project) *string { return &p.State })},
	{Name: "ZipCode", Kind: KindText, Aliases: []string{"ZipCode", "Zip Code", "Zip", "PostalCode"},
		text: text(func(p *domain.Project) *string { return &p.ZipCode })},
	{Name: "Plan1", Kind: KindText, Aliases: []string{"Plan1", "Plan", "PlanName"},
		text: text(func(p *domain.Project) *string { return &p.Plan })},
	{Name: "Living", Kind: KindNumber, Aliases: []string{"Living", "LivingSqFt", "Living SqFt"},
		number: num(func(p *domain.Project) **float64 { return &p.LivingArea })},
	{Name: "PermitNo1", Kind: KindText, Aliases: []string{"PermitNo1", "Permit No", "PermitNo", "Permit Number"},
		text: text(func(p *domain.Project) *string { return &p.PermitNo })},

	// Milestone dates
	{Name: "PDWCreated1", Kind: KindDate, Aliases: []string{"PDWCreated1", "PDWCreated", "PDW Created"},
		text: text(func(p *domain.Project) *string { return &p.PDWCreated })},
	{Name: "FinalCreatedDate", Kind: KindDate, Aliases: []string{"FinalCreatedDate", "Final Created Date", "FinalCreated"},
		text: text(func(p *domain.Project) *string { return &p.FinalCreated })},
	{Name: "FinalizationDate", Kind: KindDate, Aliases: []string{"FinalizationDate", "Finalization Date"},
		text: text(func(p *domain.Project) *string { return &p.Finalization })},
	{Name: "ConstCompleteDate", Kind: KindDate, Aliases: []string{"ConstCompleteDate", "Const Complete Date", "ConstCompleteDate1"},
		text: text(func(p *domain.Project) *string { return &p.ConstComplete })},
	{Name: "TargetClosingDate", Kind: KindDate, Aliases: []string{"TargetClosingDate", "Target Closing Date", "TargetClosing"},
		text: text(func(p *domain.Project) *string { return &p.TargetClosing })},
	{Name: "ActualClosingDate", Kind: KindDate, Aliases: []string{"ActualClosingDate", "Actual Closing Date", "ActualClosing"},
		text: text(func(p *domain.Project) *string { return &p.ActualClosing })},

	// Personnel
	{Name: "Super", Kind: KindText, Aliases: []string{"Super", "Superintendent"},
		text: text(func(p *domain.Project) *string { return &p.Super })},
	{Name: "Tech", Kind: KindText, Aliases: []string{"Tech", "Technician"},
		text: text(func(p *domain.Project) *string { return &p.Tech })},
	{Name: "RTIN", Kind: KindText, Aliases: []string{"RTIN"},
		text: text(func(p *domain.Project) *string { return &p.RTIN })},

	// Status
	{Name: "PDWFails1", Kind: KindText, Aliases: []string{"PDWFails1", "PDWFails", "PDW Fails"},
		text: text(func(p *domain.Project) *string { return &p.PDWFails })},
	{Name: "PassFail1", Kind: KindText, Aliases: []string{"PassFail1", "PassFail", "Pass Fail", "Final Fails"},
		text: text(func(p *domain.Project) *string { return &p.PassFail })},

	// HVAC equipment
	{Name: "ElecOption", Kind: KindText, Aliases: []string{"ElecOption", "Elec Option", "Electric Option"},
		text: text(func(p *domain.Project) *string { return &p.ElecOption })},
	{Name: "SupplierName", Kind: KindText, Aliases: []string{"SupplierName", "Supplier Name", "HVAC", "HVACSupplier"},
		text: text(func(p *domain.Project) *string { return &p.Supplier })},
	{Name: "Tonnage", Kind: KindNumber, Aliases: []string{"Tonnage", "Tons"},
		number: num(func(p *domain.Project) **float64 { return &p.Tonnage })},
	{Name: "RefrigeratorModel", Kind: KindText, Aliases: []string{"RefrigeratorModel", "Refrigerator Model"},
		text: text(func(p *domain.Project) *string { return &p.RefrigeratorModel })},
	{Name: "RangeModel", Kind: KindText, Aliases: []string{"RangeModel", "Range Model"},
		text: text(func(p *domain.Project) *string { return &p.RangeModel })},

	// Duct testing
	{Name: "TDLCFM", Kind: KindNumber, Aliases: []string{"TDLCFM", "TDL CFM", "TotalDuctLeakage"},
		number: num(func(p *domain.Project) **float64 { return &p.TotalDuctLeakage })},
	{Name: "LTOCFM", Kind: KindNumber, Aliases: []string{"LTOCFM", "LTO CFM", "LeakageToOutside"},
		number: num(func(p *domain.Project) **float64 { return &p.LeakageToOutside })},
	{Name: "BDCFM", Kind: KindNumber, Aliases: []string{"BDCFM", "BD CFM", "BlowerDoor"},
		number: num(func(p *domain.Project) **float64 { return &p.BlowerDoorCFM })},
	{Name: "MVCFM", Kind: KindNumber, Aliases: []string{"MVCFM", "MV CFM", "MasterVent"},
		number: num(func(p *domain.Project) **float64 { return &p.MechVentCFM })},
	{Name: "ReturnCount", Kind: KindNumber, Aliases: []string{"ReturnCount", "Return Count", "Returns"},
		number: num(func(p *domain.Project) **float64 { return &p.ReturnCount })},

	// Airflow and pressures
	{Name: "ReturnIWC", Kind: KindNumber, Aliases: []string{"ReturnIWC", "Return IWC", "ReturnStaticPressure"},
		number: num(func(p *domain.Project) **float64 { return &p.ReturnStatic })},
	{Name: "SupplyIWC", Kind: KindNumber, Aliases: []string{"SupplyIWC", "Supply IWC", "SupplyStaticPressure"},
		number: num(func(p *domain.Project) **float64 { return &p.SupplyStatic })},
	{Name: "BlowerCFM", Kind: KindNumber, Aliases: []string{"BlowerCFM", "Blower CFM", "BlowerAirflow"},
		number: num(func(p *domain.Project) **float64 { return &p.BlowerCFM })},
	{Name: "MeasuredCFM", Kind: KindNumber, Aliases: []string{"MeasuredCFM", "Measured CFM", "MeasuredAirflow"},
		number: num(func(p *domain.Project) **float64 { return &p.MeasuredCFM })},
	{Name: "FWD", Kind: KindNumber, Aliases: []string{"FWD", "FanWattDraw", "Fan Watt Draw"},
		number: num(func(p *domain.Project) **float64 { return &p.FanWattDraw })},
	{Name: "MeasuredWattage", Kind: KindNumber, Aliases: []string{"MeasuredWattage", "Measured Wattage"},
		number: num(func(p *domain.Project) **float64 { return &p.MeasuredWattage })},
	{Name: "Charge", Kind: KindNumber, Aliases: []string{"Charge", "RefrigerantCharge", "Refrigerant Charge"},
		number: num(func(p *domain.Project) **float64 { return &p.Charge })},

	// Bath fan ventilation
	{Name: "BathFan1CFM", Kind: KindNumber, Aliases: []string{"BathFan1CFM", "Bath Fan 1 CFM"},
		number: num(func(p *domain.Project) **float64 { return &p.BathFan1CFM })},
	{Name: "BathFan2CFM", Kind: KindNumber, Aliases: []string{"BathFan2CFM", "Bath Fan 2 CFM"},
		number: num(func(p *domain.Project) **float64 { return &p.BathFan2CFM })},
	{Name: "BathFan3CFM", Kind: KindNumber, Aliases: []string{"BathFan3CFM", "Bath Fan 3 CFM"},
		number: num(func(p *domain.Project) **float64 { return &p.BathFan3CFM })},
	{Name: "BathFanPass", Kind: KindText, Aliases: []string{"BathFanPass", "Bath Fan Pass"},
		text: text(func(p *domain.Project) *string { return &p.BathFanPass })},
}

var byName = func() map[string]*Field {
	m := make(map[string]*Field, len(fields))
	for i := range fields {
		m[fields[i].Name] = &fields[i]
	}
	return m
}()

// Fields returns the canonical vocabulary in schema group order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Lookup returns the field registered under the given canonical name.
func Lookup(name string) (*Field, bool) {
	f, ok := byName[name]
	return f, ok
}

// TemplateFields is the identity-field subset usable in builder home ID
// templates: the project identity fields plus the rater identifier.
func TemplateFields() []string {
	return []string{
		"Region", "Subdivision1", "Lot1", "StreetAddress", "City", "State",
		"ZipCode", "Plan1", "Living", "PermitNo1", "RTIN",
	}
}
