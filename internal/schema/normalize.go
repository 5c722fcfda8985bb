package schema

import "strings"

// NormalizeHeader reduces an external column header to its lookup form:
// trimmed, lower-cased, internal spaces removed. "Street  Address",
// "STREETADDRESS" and "streetaddress " all normalize identically.
func NormalizeHeader(header string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(header)), " ", "")
}

// reverse index: normalized alias -> field
var byAlias = func() map[string]*Field {
	m := make(map[string]*Field)
	for i := range fields {
		for _, a := range fields[i].Aliases {
			m[NormalizeHeader(a)] = &fields[i]
		}
	}
	return m
}()

// Resolve maps one external header onto its canonical field. The match is
// case- and whitespace-insensitive.
func Resolve(header string) (*Field, bool) {
	f, ok := byAlias[NormalizeHeader(header)]
	return f, ok
}

// Column binds one spreadsheet column to its canonical field. Header keeps
// the original label stripped of surrounding whitespace; Field is nil for
// unrecognized columns, which are inert to every canonical consumer.
type Column struct {
	Header string
	Field  *Field
}

// MapColumns resolves a header row. Unrecognized headers are preserved
// (stripped) rather than rejected; when two raw columns resolve to the same
// canonical field the later column wins, because values are applied in
// column order (last write wins).
func MapColumns(headers []string) []Column {
	cols := make([]Column, len(headers))
	for i, h := range headers {
		cols[i] = Column{Header: strings.TrimSpace(h)}
		if f, ok := Resolve(h); ok {
			cols[i].Field = f
		}
	}
	return cols
}

// UnknownColumns lists the headers of unresolved columns, for boundary
// logging. Blank headers are not reported.
func UnknownColumns(cols []Column) []string {
	var out []string
	for _, c := range cols {
		if c.Field == nil && c.Header != "" {
			out = append(out, c.Header)
		}
	}
	return out
}
