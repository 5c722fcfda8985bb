// Package interchange reads and writes the REM rating-software exchange
// formats. The XML codec is deliberately asymmetric: the write side emits
// grouped building elements with address and identity detail, while the
// read side recognizes only the measurement tags in the field map. A
// write-then-read round trip therefore reproduces the mapped subset of a
// record, not the whole record.
package interchange
