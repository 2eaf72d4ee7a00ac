// Package compare orchestrates one comparison run: read both inputs, parse
// and classify them, surface the count summary, then write the export bundle.
package compare
