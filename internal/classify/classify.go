package classify

import (
	"sort"

	"linediff/internal/domain"
	"linediff/internal/lineset"
)

// Classify compares two line sets and derives the five categories. It is a
// pure function of its inputs and cannot fail.
//
// Only-in and duplicate categories carry every occurrence of a qualifying
// content value, including repeats. InBoth carries one record per shared
// value: its first occurrence in A. Duplicate categories include all
// occurrences of a repeated value, not just the extras beyond the first.
func Classify(a, b domain.LineSet) domain.Classification {
	idxA := lineset.Index(a)
	idxB := lineset.Index(b)

	var res domain.Classification
	for content, recs := range idxA {
		if _, shared := idxB[content]; shared {
			res.InBoth = append(res.InBoth, recs[0])
		} else {
			res.OnlyInA = append(res.OnlyInA, recs...)
		}
		if len(recs) > 1 {
			res.DuplicatesInA = append(res.DuplicatesInA, recs...)
		}
	}
	for content, recs := range idxB {
		if _, shared := idxA[content]; !shared {
			res.OnlyInB = append(res.OnlyInB, recs...)
		}
		if len(recs) > 1 {
			res.DuplicatesInB = append(res.DuplicatesInB, recs...)
		}
	}

	// Positions are unique within one file, so sorting makes the output
	// deterministic despite map iteration order.
	for _, seq := range [][]domain.LineRecord{
		res.OnlyInA, res.OnlyInB, res.InBoth, res.DuplicatesInA, res.DuplicatesInB,
	} {
		sort.Slice(seq, func(i, j int) bool { return seq[i].Position < seq[j].Position })
	}
	return res
}
