package bide

import (
	"github.com/timtadh/closeq/types/seq"
)

// A position is an item level location in a base sequence.
type position struct {
	itemset int
	item    int
}

// IthMaximumPeriod returns the region of the base sequence strictly between
// the end of the leftmost instance of the pattern's first i item occurrences
// (the sequence start for i == 0) and the start of the rightmost instance of
// the item occurrences from i onward. An item occurring in this region in
// every supporting sequence witnesses a backward extension of the pattern at
// i. Returns nil when the region is empty.
func (p *PseudoSequence) IthMaximumPeriod(pat *seq.Pattern, i int) *PseudoSequence {
	var lower *position
	if i > 0 {
		pos, ok := firstInstanceEnd(p.seq, pat, i)
		if !ok {
			return nil
		}
		lower = &pos
	}
	upper, ok := lastInstanceStart(p.seq, pat, i)
	if !ok {
		return nil
	}
	return p.periodBetween(lower, upper)
}

// IthSemiMaximumPeriod is the i-th maximum period with its upper boundary
// pulled back to the position where the i-th item occurrence first matches:
// the region strictly between the leftmost instances of the first i and the
// first i+1 item occurrences. These narrower periods drive BackScan pruning;
// widening them would prune prefixes whose subtrees still hold closed
// patterns. Returns nil when the region is empty.
func (p *PseudoSequence) IthSemiMaximumPeriod(pat *seq.Pattern, i int) *PseudoSequence {
	var lower *position
	if i > 0 {
		pos, ok := firstInstanceEnd(p.seq, pat, i)
		if !ok {
			return nil
		}
		lower = &pos
	}
	upper, ok := firstInstanceEnd(p.seq, pat, i+1)
	if !ok {
		return nil
	}
	return p.periodBetween(lower, upper)
}

// periodBetween converts exclusive item level boundaries into a window. A
// nil lower boundary means the window starts at the sequence head.
func (p *PseudoSequence) periodBetween(lower *position, upper position) *PseudoSequence {
	s := p.seq
	start := position{0, 0}
	if lower != nil {
		if lower.item+1 < len(s.Itemsets[lower.itemset]) {
			start = position{lower.itemset, lower.item + 1}
		} else {
			start = position{lower.itemset + 1, 0}
		}
	}
	if start.itemset >= len(s.Itemsets) {
		return nil
	}
	var end position
	if upper.item > 0 {
		end = position{upper.itemset, upper.item - 1}
	} else {
		if upper.itemset == 0 {
			return nil
		}
		end = position{upper.itemset - 1, len(s.Itemsets[upper.itemset-1]) - 1}
	}
	if start.itemset > end.itemset {
		return nil
	}
	if start.itemset == end.itemset && start.item > end.item {
		return nil
	}
	return &PseudoSequence{
		seq:          s,
		firstItemset: start.itemset,
		firstItem:    start.item,
		lastItemset:  end.itemset,
		lastItem:     end.item,
	}
}

// occurrenceItemsets splits the pattern's item occurrences [from, to) into
// the itemset shaped pieces they span: whole pattern itemsets plus a leading
// or trailing partial piece when a boundary falls inside an itemset.
func occurrenceItemsets(pat *seq.Pattern, from, to int) []seq.Itemset {
	pieces := make([]seq.Itemset, 0, pat.Size())
	offset := 0
	for _, itemset := range pat.Itemsets() {
		lo := from - offset
		hi := to - offset
		if lo < 0 {
			lo = 0
		}
		if hi > len(itemset) {
			hi = len(itemset)
		}
		if lo < hi {
			pieces = append(pieces, itemset[lo:hi])
		}
		offset += len(itemset)
	}
	return pieces
}

// firstInstanceEnd finds the leftmost instance of the pattern's first n item
// occurrences, matching each piece inside a single base itemset, and returns
// the position of the n-th matched item.
func firstInstanceEnd(s *seq.Sequence, pat *seq.Pattern, n int) (position, bool) {
	pieces := occurrenceItemsets(pat, 0, n)
	cur := 0
	var end position
	for _, piece := range pieces {
		found := false
		for b := cur; b < len(s.Itemsets); b++ {
			if idx := lastIndexOfPiece(s.Itemsets[b], piece); idx >= 0 {
				end = position{b, idx}
				cur = b + 1
				found = true
				break
			}
		}
		if !found {
			return position{}, false
		}
	}
	return end, true
}

// lastInstanceStart finds the rightmost instance of the pattern's item
// occurrences from n onward and returns the position of occurrence n.
func lastInstanceStart(s *seq.Sequence, pat *seq.Pattern, n int) (position, bool) {
	pieces := occurrenceItemsets(pat, n, pat.ItemCount())
	cur := len(s.Itemsets) - 1
	var start position
	for k := len(pieces) - 1; k >= 0; k-- {
		found := false
		for b := cur; b >= 0; b-- {
			if idx := firstIndexOfPiece(s.Itemsets[b], pieces[k]); idx >= 0 {
				start = position{b, idx}
				cur = b - 1
				found = true
				break
			}
		}
		if !found {
			return position{}, false
		}
	}
	return start, true
}

// lastIndexOfPiece reports whether base contains every item of piece and, if
// so, the index of the last of them. Both sides are ascending so a single
// merged scan suffices.
func lastIndexOfPiece(base seq.Itemset, piece seq.Itemset) int {
	idx := -1
	j := 0
	for _, need := range piece {
		for j < len(base) && base[j] < need {
			j++
		}
		if j >= len(base) || base[j] != need {
			return -1
		}
		idx = j
		j++
	}
	return idx
}

// firstIndexOfPiece is lastIndexOfPiece returning the index of the first
// item of the piece instead.
func firstIndexOfPiece(base seq.Itemset, piece seq.Itemset) int {
	first := -1
	j := 0
	for k, need := range piece {
		for j < len(base) && base[j] < need {
			j++
		}
		if j >= len(base) || base[j] != need {
			return -1
		}
		if k == 0 {
			first = j
		}
		j++
	}
	return first
}
