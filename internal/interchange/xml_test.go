package interchange

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "ratersync/internal/errors"
	"ratersync/pkg/contracts/domain"
)

func TestParseXMLContainers(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<REMRateExport version="1.0">
  <Building id="1">
    <BuildingInfo>
      <ConditionedFloorArea>1800</ConditionedFloorArea>
    </BuildingInfo>
    <DuctTesting>
      <TotalDuctLeakage>80.0</TotalDuctLeakage>
      <DuctLeakageToOutside>30.0</DuctLeakageToOutside>
    </DuctTesting>
  </Building>
  <Home>
    <BlowerDoorCFM50>1200.5</BlowerDoorCFM50>
    <CoolingCapacity>3.5</CoolingCapacity>
  </Home>
</REMRateExport>`

	path := filepath.Join(t.TempDir(), "export.xml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	projects, err := ParseXML(path)
	require.NoError(t, err)
	require.Len(t, projects, 2)

	first := projects[0]
	require.NotNil(t, first.LivingArea)
	assert.Equal(t, 1800.0, *first.LivingArea)
	require.NotNil(t, first.TotalDuctLeakage)
	assert.Equal(t, 80.0, *first.TotalDuctLeakage)
	require.NotNil(t, first.LeakageToOutside)
	assert.Equal(t, 30.0, *first.LeakageToOutside)

	second := projects[1]
	require.NotNil(t, second.BlowerDoorCFM)
	assert.Equal(t, 1200.5, *second.BlowerDoorCFM)
	require.NotNil(t, second.Tonnage)
	assert.Equal(t, 3.5, *second.Tonnage)
}

func TestParseXMLNamespacePrefixes(t *testing.T) {
	doc := `<?xml version="1.0"?>
<rem:Export xmlns:rem="http://example.com/rem">
  <rem:Rating>
    <rem:SystemAirflow>1400</rem:SystemAirflow>
    <rem:ReturnStaticPressure>0.18</rem:ReturnStaticPressure>
  </rem:Rating>
</rem:Export>`

	path := filepath.Join(t.TempDir(), "namespaced.xml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	projects, err := ParseXML(path)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.NotNil(t, projects[0].MeasuredCFM)
	assert.Equal(t, 1400.0, *projects[0].MeasuredCFM)
	require.NotNil(t, projects[0].ReturnStatic)
	assert.Equal(t, 0.18, *projects[0].ReturnStatic)
}

func TestParseXMLNestedContainerIsOneRecord(t *testing.T) {
	doc := `<REMRateExport>
  <Building>
    <BuildingInfo>
      <ConditionedFloorArea>1800</ConditionedFloorArea>
    </BuildingInfo>
    <Rating>
      <BlowerDoorCFM50>1200</BlowerDoorCFM50>
    </Rating>
  </Building>
</REMRateExport>`

	path := filepath.Join(t.TempDir(), "nested.xml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	projects, err := ParseXML(path)
	require.NoError(t, err)
	// The nested Rating is payload of the outer Building, not a second
	// record.
	require.Len(t, projects, 1)
	require.NotNil(t, projects[0].LivingArea)
	assert.Equal(t, 1800.0, *projects[0].LivingArea)
	require.NotNil(t, projects[0].BlowerDoorCFM)
	assert.Equal(t, 1200.0, *projects[0].BlowerDoorCFM)
}

func TestParseXMLIgnoresUnknownAndEmpty(t *testing.T) {
	doc := `<REMRateExport>
  <Building>
    <UnknownTag>42</UnknownTag>
    <Notes>free text</Notes>
  </Building>
  <Building>
    <RefrigerantCharge>0.03</RefrigerantCharge>
  </Building>
</REMRateExport>`

	path := filepath.Join(t.TempDir(), "sparse.xml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	projects, err := ParseXML(path)
	require.NoError(t, err)
	// First building resolves nothing and is dropped.
	require.Len(t, projects, 1)
	require.NotNil(t, projects[0].Charge)
	assert.Equal(t, 0.03, *projects[0].Charge)
}

func TestParseXMLMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xml")
	require.NoError(t, os.WriteFile(path, []byte("<REMRateExport><Building>"), 0644))

	_, err := ParseXML(path)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeMalformedDocument, apperrors.CodeOf(err))
}

func TestWriteXMLDocumentShape(t *testing.T) {
	projects := []*domain.Project{
		{
			Subdivision:      "Oakwood",
			Lot:              "12",
			StreetAddress:    "123 Main St",
			City:             "Baton Rouge",
			State:            "LA",
			ZipCode:          "70810",
			LivingArea:       domain.Float(1800),
			TotalDuctLeakage: domain.Float(80),
			LeakageToOutside: domain.Float(30),
			BlowerDoorCFM:    domain.Float(1200),
			Tonnage:          domain.Float(3.5),
		},
		{}, // skipped, but its id slot is preserved
		{MeasuredCFM: domain.Float(1400)},
	}

	path := filepath.Join(t.TempDir(), "out.xml")
	require.NoError(t, WriteXML(projects, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)

	assert.Contains(t, text, `encoding="UTF-8"`)
	assert.Contains(t, text, `<REMRateExport version="1.0"`)
	assert.Contains(t, text, `source="DSLD Ekotrope Sync v9"`)
	assert.Contains(t, text, `<Building id="1">`)
	assert.NotContains(t, text, `id="2"`, "empty record keeps its slot but emits nothing")
	assert.Contains(t, text, `<Building id="3">`)

	// Leakage values carry one decimal place, capacity uses the default
	// representation.
	assert.Contains(t, text, "<TotalDuctLeakage>80.0</TotalDuctLeakage>")
	assert.Contains(t, text, "<DuctLeakageToOutside>30.0</DuctLeakageToOutside>")
	assert.Contains(t, text, "<BlowerDoorCFM50>1200.0</BlowerDoorCFM50>")
	assert.Contains(t, text, "<CoolingCapacity>3.5</CoolingCapacity>")
	assert.Contains(t, text, "<Street>123 Main St</Street>")
	assert.Contains(t, text, "<Subdivision>Oakwood</Subdivision>")

	// Two-space pretty printing.
	assert.Contains(t, text, "\n  <Building")
}

func TestWriteXMLOmitsEmptyGroups(t *testing.T) {
	projects := []*domain.Project{{Tonnage: domain.Float(4)}}

	path := filepath.Join(t.TempDir(), "hvac-only.xml")
	require.NoError(t, WriteXML(projects, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)

	assert.Contains(t, text, "<HVAC>")
	assert.NotContains(t, text, "<Address>")
	assert.NotContains(t, text, "<BuildingInfo>")
	assert.NotContains(t, text, "<DuctTesting>")
	assert.NotContains(t, text, "<Infiltration>")
}

func TestXMLRoundTripMappedSubset(t *testing.T) {
	original := &domain.Project{
		// Mapped measurement fields survive the trip.
		LivingArea:       domain.Float(1800),
		TotalDuctLeakage: domain.Float(80),
		LeakageToOutside: domain.Float(30),
		BlowerDoorCFM:    domain.Float(1200),
		Tonnage:          domain.Float(3.5),
		MeasuredCFM:      domain.Float(1400),
		ReturnStatic:     domain.Float(0.18),
		SupplyStatic:     domain.Float(0.22),
		Charge:           domain.Float(0.03),
		// Outside the field map: written as display detail, lost on parse.
		Subdivision:   "Oakwood",
		Lot:           "12",
		StreetAddress: "123 Main St",
		FanWattDraw:   domain.Float(410),
	}

	path := filepath.Join(t.TempDir(), "roundtrip.xml")
	require.NoError(t, WriteXML([]*domain.Project{original}, path))

	back, err := ParseXML(path)
	require.NoError(t, err)
	require.Len(t, back, 1)
	got := back[0]

	assert.Equal(t, *original.LivingArea, *got.LivingArea)
	assert.Equal(t, *original.TotalDuctLeakage, *got.TotalDuctLeakage)
	assert.Equal(t, *original.LeakageToOutside, *got.LeakageToOutside)
	assert.Equal(t, *original.BlowerDoorCFM, *got.BlowerDoorCFM)
	assert.Equal(t, *original.Tonnage, *got.Tonnage)
	assert.Equal(t, *original.MeasuredCFM, *got.MeasuredCFM)
	assert.Equal(t, *original.ReturnStatic, *got.ReturnStatic)
	assert.Equal(t, *original.SupplyStatic, *got.SupplyStatic)
	assert.Equal(t, *original.Charge, *got.Charge)

	// Subset equality only: unmapped fields do not round-trip.
	assert.Empty(t, got.Subdivision)
	assert.Empty(t, got.Lot)
	assert.Empty(t, got.StreetAddress)
	assert.Nil(t, got.FanWattDraw)
}

func TestReadFileDispatch(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "projects.pdf"))
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeUnsupportedFormat, apperrors.CodeOf(err))
	assert.True(t, strings.Contains(err.Error(), ".pdf"))
}
