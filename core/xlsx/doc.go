// Package xlsx converts between the in-memory Table representation and
// spreadsheet workbooks, and packages partition sets into zip archives.
// The reconciliation core itself never touches files; this package is the
// I/O collaborator the CLI and HTTP layers go through.
package xlsx
