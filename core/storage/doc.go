// Package storage provides the object storage client used to fetch input
// workbooks and persist reconciliation and split outputs in server mode.
//
// The Client interface wraps the Minio SDK so services depend on a narrow,
// mockable surface; the mocks subpackage provides a testify mock.
package storage
