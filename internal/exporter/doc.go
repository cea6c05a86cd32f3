// Package exporter writes aggregate tables as CSV files alongside the
// rendered charts, so the numbers behind every chart can be inspected and
// reused.
//
// CSVWriter: core CSV writing with headers and a UTF-8 BOM for Excel
// compatibility.
//
// WriteTable: flattens a render table into a <name>.csv file with fixed
// 2-decimal float formatting.
package exporter
