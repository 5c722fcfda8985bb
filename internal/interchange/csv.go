package interchange

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"ratersync/internal/calc"
	apperrors "ratersync/internal/errors"
	"ratersync/internal/schema"
	"ratersync/pkg/contracts/domain"
)

// remCSVHeaders is the write-side header row. These are display labels,
// not canonical field names; the CSV export is a human-facing view.
var remCSVHeaders = []string{
	"Subdivision",
	"Lot",
	"Address",
	"Conditioned Floor Area",
	"Total Duct Leakage CFM25",
	"Leakage to Outside CFM25",
	"Blower Door CFM50",
	"ACH50",
	"Cooling Tons",
	"Pass/Fail",
}

// ParseCSV reads a canonical-headed CSV into project records. Headers are
// resolved through the alias table; NaN-equivalent cells and entirely
// empty rows are dropped.
func ParseCSV(path string) ([]*domain.Project, error) {
	const op = "interchange.ParseCSV"

	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.E(op, apperrors.CodeFileSystem, fmt.Errorf("open CSV: %w", err))
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, apperrors.E(op, apperrors.CodeMalformedDocument, fmt.Errorf("read CSV: %w", err))
	}
	if len(rows) == 0 {
		return nil, apperrors.Ef(op, apperrors.CodeNoData, "CSV has no header row")
	}

	cols := schema.MapColumns(rows[0])
	var projects []*domain.Project
	for _, row := range rows[1:] {
		p := &domain.Project{}
		for j, col := range cols {
			if col.Field == nil || j >= len(row) {
				continue
			}
			raw := strings.TrimSpace(row[j])
			if raw == "" || strings.EqualFold(raw, "nan") {
				continue
			}
			col.Field.Apply(p, raw)
		}
		if !p.IsEmpty() {
			projects = append(projects, p)
		}
	}
	return projects, nil
}

// WriteCSV serializes records to the display-oriented REM CSV at path.
// The ACH50 column is derived from the blower-door reading and floor area
// on the way out; it is never stored on the record.
func WriteCSV(projects []*domain.Project, path string) error {
	const op = "interchange.WriteCSV"

	f, err := os.Create(path)
	if err != nil {
		return apperrors.E(op, apperrors.CodeFileSystem, fmt.Errorf("create CSV: %w", err))
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(remCSVHeaders); err != nil {
		return apperrors.E(op, apperrors.CodeFileSystem, err)
	}
	for _, p := range projects {
		if p.IsEmpty() {
			continue
		}
		if err := w.Write(remCSVRow(p)); err != nil {
			return apperrors.E(op, apperrors.CodeFileSystem, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return apperrors.E(op, apperrors.CodeFileSystem, err)
	}
	return nil
}

func remCSVRow(p *domain.Project) []string {
	ach50 := ""
	if p.BlowerDoorCFM != nil && p.Living() > 0 {
		if v := calc.ACH50(*p.BlowerDoorCFM, p.Living(), calc.DefaultCeilingHeight); v != 0 {
			ach50 = fmt.Sprintf("%.2f", v)
		}
	}
	return []string{
		p.Subdivision,
		p.Lot,
		p.StreetAddress,
		optNumber(p.LivingArea),
		optNumber(p.TotalDuctLeakage),
		optNumber(p.LeakageToOutside),
		optNumber(p.BlowerDoorCFM),
		ach50,
		optNumber(p.Tonnage),
		p.PassFail,
	}
}

func optNumber(v *float64) string {
	if v == nil {
		return ""
	}
	return formatNumber(*v)
}
