package dataprocessing

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	apperrors "ratersync/internal/errors"
	"ratersync/internal/schema"
	"ratersync/pkg/contracts/domain"
)

// headerScanDepth is how many leading rows of a sheet are searched for a
// header row before giving up on that sheet.
const headerScanDepth = 5

// minResolvedColumns is the number of canonical columns a row must resolve
// to before it is accepted as the header row.
const minResolvedColumns = 2

// Date layouts seen in builder exports, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"1/2/2006",
	"01/02/2006",
	"1/2/06",
	"1-2-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2-Jan-2006",
	"2-Jan-06",
}

// Cell contents treated as "no value" regardless of field kind.
var sentinelValues = map[string]bool{
	"nan":  true,
	"none": true,
	"n/a":  true,
	"na":   true,
	"-":    true,
	"#n/a": true,
}

// ParseWorkbook reads a builder spreadsheet and returns its rows as
// canonical project records in sheet order. Rows with no recognized data
// are dropped; cells whose values cannot be interpreted are left absent.
func ParseWorkbook(path string, logger *slog.Logger) ([]*domain.Project, error) {
	const op = "dataprocessing.ParseWorkbook"
	if logger == nil {
		logger = slog.Default()
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.E(op, apperrors.CodeMalformedDocument, fmt.Errorf("open workbook: %w", err))
	}
	defer f.Close()

	sheet, rows, headerRow, cols, err := findDataSheet(f)
	if err != nil {
		return nil, apperrors.E(op, apperrors.CodeNoData, err)
	}

	logger.Info("Found project data sheet",
		slog.String("file", path),
		slog.String("sheet", sheet),
		slog.Int("header_row", headerRow),
		slog.Int("total_rows", len(rows)))

	if unknown := schema.UnknownColumns(cols); len(unknown) > 0 {
		logger.Warn("Unrecognized columns ignored",
			slog.String("sheet", sheet),
			slog.Any("columns", unknown))
	}

	var projects []*domain.Project
	for i := headerRow + 1; i < len(rows); i++ {
		p := parseRow(cols, rows[i])
		if p.IsEmpty() {
			continue
		}
		projects = append(projects, p)
	}

	logger.Info("Workbook parsed",
		slog.String("file", path),
		slog.Int("projects", len(projects)))
	return projects, nil
}

// findDataSheet locates the first sheet whose leading rows contain a header
// resolving enough canonical columns to be worth parsing.
func findDataSheet(f *excelize.File) (sheet string, rows [][]string, headerRow int, cols []schema.Column, err error) {
	for _, name := range f.GetSheetList() {
		sheetRows, rowsErr := f.GetRows(name)
		if rowsErr != nil || len(sheetRows) == 0 {
			continue
		}
		depth := headerScanDepth
		if depth > len(sheetRows) {
			depth = len(sheetRows)
		}
		for i := 0; i < depth; i++ {
			mapped := schema.MapColumns(sheetRows[i])
			if resolvedCount(mapped) >= minResolvedColumns {
				return name, sheetRows, i, mapped, nil
			}
		}
	}
	return "", nil, 0, nil, fmt.Errorf("no sheet with recognizable project columns")
}

func resolvedCount(cols []schema.Column) int {
	n := 0
	for _, c := range cols {
		if c.Field != nil {
			n++
		}
	}
	return n
}

// parseRow builds one project record from a data row. Later columns that
// resolve to an already-set field overwrite the earlier value.
func parseRow(cols []schema.Column, row []string) *domain.Project {
	p := &domain.Project{}
	for j, col := range cols {
		if col.Field == nil || j >= len(row) {
			continue
		}
		raw := cleanCell(row[j], col.Field.Kind)
		if raw == "" {
			continue
		}
		col.Field.Apply(p, raw)
	}
	return p
}

// cleanCell normalizes a raw cell for the field kind it is headed into:
// sentinel strings become absent, numbers lose thousands separators, and
// dates are reformatted to YYYY-MM-DD when a known layout matches.
func cleanCell(raw string, kind schema.Kind) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || sentinelValues[strings.ToLower(raw)] {
		return ""
	}
	switch kind {
	case schema.KindNumber:
		return strings.ReplaceAll(raw, ",", "")
	case schema.KindDate:
		return normalizeDate(raw)
	}
	return raw
}

// normalizeDate converts a date cell to YYYY-MM-DD. Values in no known
// layout pass through untouched; they are still useful as display text.
func normalizeDate(raw string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return raw
}
