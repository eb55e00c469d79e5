// Package split partitions a single table into named groups by composite
// key value, preserving first-seen key order and input row order.
package split
