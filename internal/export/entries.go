package export

import (
	"strings"

	"linediff/internal/domain"
)

// Default file-name segments used when no labels are supplied.
const (
	DefaultLabelA = "File_A"
	DefaultLabelB = "File_B"
)

// Entries produces the named members of the export bundle, in report order.
// labelA and labelB replace the File_A/File_B name segments when non-empty.
func Entries(c domain.Classification, labelA, labelB string) []domain.Entry {
	la := sanitizeLabel(labelA, DefaultLabelA)
	lb := sanitizeLabel(labelB, DefaultLabelB)
	return []domain.Entry{
		{Name: "only_in_" + la + ".csv", Body: []byte(CSV(c.OnlyInA))},
		{Name: "only_in_" + lb + ".csv", Body: []byte(CSV(c.OnlyInB))},
		{Name: "in_both.csv", Body: []byte(CSV(c.InBoth))},
		{Name: "duplicates_in_" + la + ".csv", Body: []byte(CSV(c.DuplicatesInA))},
		{Name: "duplicates_in_" + lb + ".csv", Body: []byte(CSV(c.DuplicatesInB))},
		{Name: "README.md", Body: []byte(Readme())},
	}
}

// sanitizeLabel keeps archive entry names portable: anything outside
// [A-Za-z0-9._-] becomes an underscore.
func sanitizeLabel(label, fallback string) string {
	if label == "" {
		return fallback
	}
	var sb strings.Builder
	sb.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String()
}
