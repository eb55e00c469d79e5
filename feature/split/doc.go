// Package split exposes key-based table partitioning over HTTP.
//
// POST /split takes the table inline and returns the partitions inline.
// POST /split/objects loads an xlsx object from the configured bucket and
// writes a zip archive with one single-sheet workbook per partition back to
// the bucket.
package split
