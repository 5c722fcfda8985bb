// Package dataprocessing loads builder spreadsheets into canonical project
// records. It handles workbook sheet detection, header-to-field resolution
// through the schema alias table, cell cleanup (dates, thousands separators,
// sentinel values) and stable batch key derivation.
package dataprocessing
