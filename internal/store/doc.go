// Package store provides the file I/O facilities: reading comparison inputs
// and writing rendered artifacts and export bundles to disk.
//
// All writes go through a temp file that is renamed into place on success,
// so a failed export never leaves a partial artifact behind.
package store
