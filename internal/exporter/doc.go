// Package exporter produces the rating-submission document: the terminal
// JSON artifact handed to the external submission service. Builder home
// identifiers come from a configurable placeholder template; records whose
// identifier fails to resolve are silently excluded rather than failing
// the export.
package exporter
