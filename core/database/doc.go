// Package database manages the optional SQL connection and loads whole
// tables into the in-memory tabular representation, so a reconciliation
// side can come from a database table instead of a workbook.
package database
