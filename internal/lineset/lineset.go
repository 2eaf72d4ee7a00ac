package lineset

import (
	"strings"

	"linediff/internal/domain"
)

// Parse splits raw file text on CRLF or LF and builds a LineSet. Files with
// fewer than two lines (header only, or empty) yield an empty set.
func Parse(text string) domain.LineSet {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	set := make(domain.LineSet, 0, len(lines))
	for i, line := range lines {
		if i == 0 {
			// Header line, never compared.
			continue
		}
		content := strings.TrimSpace(line)
		if content == "" {
			continue
		}
		set = append(set, domain.LineRecord{Content: content, Position: i + 1})
	}
	return set
}

// Index groups a LineSet's records by content. Lists keep file order, so the
// first element of each list is that content's first occurrence.
func Index(set domain.LineSet) domain.ContentIndex {
	idx := make(domain.ContentIndex, len(set))
	for _, rec := range set {
		idx[rec.Content] = append(idx[rec.Content], rec)
	}
	return idx
}
