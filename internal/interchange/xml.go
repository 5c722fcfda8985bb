package interchange

import (
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	apperrors "ratersync/internal/errors"
	"ratersync/internal/schema"
	"ratersync/pkg/contracts/domain"
)

// XMLSource is the export root's fixed source attribute.
const XMLSource = "DSLD Ekotrope Sync v9"

// xmlFormatVersion is the interchange document version the writer emits.
const xmlFormatVersion = "1.0"

// Container element local names recognized on the read side, tried in
// this order. REM exports from different tool versions use different
// wrappers for the same payload.
var containerTags = []string{"Building", "Home", "Project", "Rating"}

// xmlFieldMap maps interchange element local names to canonical field
// names. It defines the read-side vocabulary; anything outside it is
// ignored on parse even though the writer emits more.
var xmlFieldMap = map[string]string{
	"ConditionedFloorArea": "Living",
	"TotalDuctLeakage":     "TDLCFM",
	"DuctLeakageToOutside": "LTOCFM",
	"BlowerDoorCFM50":      "BDCFM",
	"CoolingCapacity":      "Tonnage",
	"SystemAirflow":        "MeasuredCFM",
	"ReturnStaticPressure": "ReturnIWC",
	"SupplyStaticPressure": "SupplyIWC",
	"RefrigerantCharge":    "Charge",
}

// ParseXML reads a REM interchange XML document into canonical records.
// Containers are matched by local name regardless of namespace prefix;
// within each container every descendant element whose local name appears
// in the field map contributes a value. A container nested inside another
// container belongs to the outer record and never starts one of its own.
func ParseXML(path string) ([]*domain.Project, error) {
	const op = "interchange.ParseXML"

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, apperrors.E(op, apperrors.CodeMalformedDocument, fmt.Errorf("read XML: %w", err))
	}
	root := doc.Root()
	if root == nil {
		return nil, apperrors.Ef(op, apperrors.CodeMalformedDocument, "document has no root element")
	}

	var projects []*domain.Project
	for _, tag := range containerTags {
		for _, container := range findByLocalName(root, tag) {
			if nestedInContainer(container) {
				continue
			}
			p := parseContainer(container)
			if !p.IsEmpty() {
				projects = append(projects, p)
			}
		}
	}
	return projects, nil
}

// findByLocalName collects descendants of el (excluding el itself) whose
// local tag name matches, in document order. etree keeps any namespace
// prefix in Element.Space, so Tag alone is the local name.
func findByLocalName(el *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	for _, child := range el.ChildElements() {
		if child.Tag == tag {
			out = append(out, child)
		}
		out = append(out, findByLocalName(child, tag)...)
	}
	return out
}

// nestedInContainer reports whether el sits under another container
// element. Such elements are payload of the outer record.
func nestedInContainer(el *etree.Element) bool {
	for parent := el.Parent(); parent != nil; parent = parent.Parent() {
		for _, tag := range containerTags {
			if parent.Tag == tag {
				return true
			}
		}
	}
	return false
}

// parseContainer extracts the mapped measurement fields from one building
// container. Content that does not parse as a number is dropped; the
// canonical record is typed and cannot carry free text in these fields.
func parseContainer(container *etree.Element) *domain.Project {
	p := &domain.Project{}
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		for _, child := range el.ChildElements() {
			if canonical, ok := xmlFieldMap[child.Tag]; ok {
				if field, found := schema.Lookup(canonical); found {
					field.Apply(p, child.Text())
				}
			}
			walk(child)
		}
	}
	walk(container)
	return p
}

// WriteXML serializes records to a REM interchange document at path.
// Empty records keep their position in the id sequence but emit no
// element. Sub-groups appear only when at least one member field is
// present. Leakage and infiltration values carry one decimal place;
// everything else uses the shortest exact representation.
func WriteXML(projects []*domain.Project, path string) error {
	const op = "interchange.WriteXML"

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("REMRateExport")
	root.CreateAttr("version", xmlFormatVersion)
	root.CreateAttr("exportDate", time.Now().Format(time.RFC3339))
	root.CreateAttr("source", XMLSource)

	for i, p := range projects {
		if p.IsEmpty() {
			continue
		}
		building := root.CreateElement("Building")
		building.CreateAttr("id", strconv.Itoa(i+1))
		writeBuilding(building, p)
	}

	doc.Indent(2)
	if err := doc.WriteToFile(path); err != nil {
		return apperrors.E(op, apperrors.CodeFileSystem, fmt.Errorf("write XML: %w", err))
	}
	return nil
}

func writeBuilding(building *etree.Element, p *domain.Project) {
	if p.StreetAddress != "" {
		addr := building.CreateElement("Address")
		setText(addr, "Street", p.StreetAddress)
		setText(addr, "City", p.City)
		setText(addr, "State", p.State)
		setText(addr, "ZipCode", p.ZipCode)
	}

	if p.LivingArea != nil || p.Subdivision != "" || p.Lot != "" {
		info := building.CreateElement("BuildingInfo")
		if p.LivingArea != nil {
			setText(info, "ConditionedFloorArea", formatNumber(*p.LivingArea))
		}
		setText(info, "Subdivision", p.Subdivision)
		setText(info, "LotNumber", p.Lot)
	}

	if p.TotalDuctLeakage != nil || p.LeakageToOutside != nil {
		ducts := building.CreateElement("DuctTesting")
		setFloat1(ducts, "TotalDuctLeakage", p.TotalDuctLeakage)
		setFloat1(ducts, "DuctLeakageToOutside", p.LeakageToOutside)
	}

	if p.BlowerDoorCFM != nil {
		infiltration := building.CreateElement("Infiltration")
		setFloat1(infiltration, "BlowerDoorCFM50", p.BlowerDoorCFM)
	}

	if p.Tonnage != nil || p.MeasuredCFM != nil || p.ReturnStatic != nil ||
		p.SupplyStatic != nil || p.Charge != nil {
		hvac := building.CreateElement("HVAC")
		setOptNumber(hvac, "CoolingCapacity", p.Tonnage)
		setOptNumber(hvac, "SystemAirflow", p.MeasuredCFM)
		setOptNumber(hvac, "ReturnStaticPressure", p.ReturnStatic)
		setOptNumber(hvac, "SupplyStaticPressure", p.SupplyStatic)
		setOptNumber(hvac, "RefrigerantCharge", p.Charge)
	}
}

func setText(parent *etree.Element, tag, value string) {
	if value == "" {
		return
	}
	parent.CreateElement(tag).SetText(value)
}

func setFloat1(parent *etree.Element, tag string, v *float64) {
	if v == nil {
		return
	}
	parent.CreateElement(tag).SetText(fmt.Sprintf("%.1f", *v))
}

func setOptNumber(parent *etree.Element, tag string, v *float64) {
	if v == nil {
		return
	}
	parent.CreateElement(tag).SetText(formatNumber(*v))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
