// Package flock serializes cross-process access to the data file. The
// store takes an exclusive, non-blocking lock on a side .lock file before
// every read-modify-write so two docket invocations cannot interleave
// snapshot rewrites; the doctor command reuses the same lock to probe
// availability.
package flock
