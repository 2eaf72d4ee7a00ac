package domain

import "fmt"

// LineRecord is one retained line from an input file.
type LineRecord struct {
	Content  string // trimmed, never empty
	Position int    // 1-based position in the source file; the header is line 1
}

// LineSet is the cleaned, ordered line collection from one input file:
// header removed, blank lines dropped, content trimmed.
type LineSet []LineRecord

// ContentIndex groups a LineSet's records by content, in file order within
// each group. Every record of the set appears in exactly one group.
type ContentIndex map[string][]LineRecord

// Classification holds the five derived categories. Each sequence is sorted
// ascending by Position.
//
// OnlyInA, OnlyInB and the duplicate categories carry every occurrence of a
// qualifying content value. InBoth carries exactly one record per shared
// value: its first occurrence in file A. The asymmetry is intentional and
// consumers of the exported reports rely on it.
type Classification struct {
	OnlyInA       []LineRecord
	OnlyInB       []LineRecord
	InBoth        []LineRecord
	DuplicatesInA []LineRecord
	DuplicatesInB []LineRecord
}

// Summary renders the per-category counts for the status surface.
func (c Classification) Summary(labelA, labelB string) string {
	return fmt.Sprintf(
		"only in %s: %d / only in %s: %d / in both: %d / duplicates in %s: %d / duplicates in %s: %d",
		labelA, len(c.OnlyInA),
		labelB, len(c.OnlyInB),
		len(c.InBoth),
		labelA, len(c.DuplicatesInA),
		labelB, len(c.DuplicatesInB),
	)
}

// Entry is one named text member of an export bundle.
type Entry struct {
	Name string
	Body []byte
}

// CompareRequest names the inputs and output of one comparison run.
type CompareRequest struct {
	PathA  string
	PathB  string
	Output string // archive path
	LabelA string // display name for file A; defaults derive from PathA
	LabelB string // display name for file B; defaults derive from PathB
}
