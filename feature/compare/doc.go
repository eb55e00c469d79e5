// Package compare exposes table reconciliation over HTTP.
//
// Two entry points are provided: POST /compare takes both tables inline in
// the request body, POST /compare/objects loads each side from an xlsx
// object in the configured bucket or from a database table and writes the
// result workbook back to the bucket.
//
// # Components
//
//   - Service: resolves input sources and runs the reconcile/unify/sort
//     pipeline from core/reconcile and core/table.
//   - Handler: exposes the HTTP endpoints.
//   - Feature: registers the vertical with the application loader.
package compare
