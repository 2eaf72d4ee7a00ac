// Package lineset turns raw input text into the cleaned line collection the
// classifier operates on.
//
// The first line of every input is a header and is never compared. Remaining
// lines are trimmed; lines that are empty after trimming are dropped. Each
// retained line keeps its 1-based position in the source file, so the first
// data line is position 2.
package lineset
