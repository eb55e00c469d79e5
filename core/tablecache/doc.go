// Package tablecache caches tables parsed from storage-hosted workbooks
// with a TTL and singleflight stampede protection, so repeated reconcile or
// split calls against the same object skip the download and parse.
package tablecache
