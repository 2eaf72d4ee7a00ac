// Package classify implements the five-way line-set comparison: lines only
// in A, only in B, shared, and duplicated within each side.
package classify
