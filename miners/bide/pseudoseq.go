package bide

import (
	"fmt"
)

import (
	"github.com/timtadh/closeq/types/seq"
)

// A PseudoSequence is a cursor over a contiguous window of a base sequence.
// Projection never copies sequences; it only narrows windows. The window is
// the itemsets firstItemset..lastItemset, with the first itemset starting at
// firstItem and the last ending at lastItem (both inclusive). A first itemset
// starting past item 0 is a postfix: the part of the base itemset before the
// cursor was consumed by the projection that produced this window. A last
// itemset ending before the end of its base itemset is cut at right.
type PseudoSequence struct {
	seq          *seq.Sequence
	firstItemset int
	firstItem    int
	lastItemset  int
	lastItem     int
}

// newPseudoSequence wraps a whole sequence.
func newPseudoSequence(s *seq.Sequence) *PseudoSequence {
	last := len(s.Itemsets) - 1
	return &PseudoSequence{
		seq:         s,
		lastItemset: last,
		lastItem:    len(s.Itemsets[last]) - 1,
	}
}

// project narrows the window to start at item j of visible itemset i. The
// coordinates are visible positions: for i == 0 the parent's first item
// offset carries into the child, which is how postfix-ness propagates when a
// projection lands in the middle of an itemset.
func (p *PseudoSequence) project(i, j int) *PseudoSequence {
	first := p.firstItemset + i
	item := j
	if i == 0 {
		item = p.firstItem + j
	}
	return &PseudoSequence{
		seq:          p.seq,
		firstItemset: first,
		firstItem:    item,
		lastItemset:  p.lastItemset,
		lastItem:     p.lastItem,
	}
}

func (p *PseudoSequence) empty() bool {
	if p.firstItemset > p.lastItemset {
		return true
	}
	return p.firstItemset == p.lastItemset && p.firstItem > p.lastItem
}

// Id returns the base sequence id.
func (p *PseudoSequence) Id() int {
	return p.seq.Id
}

// Size is the number of visible itemsets.
func (p *PseudoSequence) Size() int {
	return p.lastItemset - p.firstItemset + 1
}

func (p *PseudoSequence) start(i int) int {
	if i == 0 {
		return p.firstItem
	}
	return 0
}

func (p *PseudoSequence) end(i int) int {
	if p.firstItemset+i == p.lastItemset {
		return p.lastItem
	}
	return len(p.seq.Itemsets[p.firstItemset+i]) - 1
}

// SizeOfItemsetAt is the visible item count of the i-th visible itemset.
func (p *PseudoSequence) SizeOfItemsetAt(i int) int {
	return p.end(i) - p.start(i) + 1
}

// ItemAt returns the j-th visible item of the i-th visible itemset.
func (p *PseudoSequence) ItemAt(j, i int) int32 {
	return p.seq.Itemsets[p.firstItemset+i][p.start(i)+j]
}

// IndexOf returns the first visible index in itemset i whose item equals
// item, or -1. The ascending item order ends the scan early.
func (p *PseudoSequence) IndexOf(i int, item int32) int {
	size := p.SizeOfItemsetAt(i)
	for j := 0; j < size; j++ {
		x := p.ItemAt(j, i)
		if x == item {
			return j
		} else if x > item {
			break
		}
	}
	return -1
}

// IsPostfix reports whether the i-th visible itemset is the truncated
// remainder of its base itemset: only the first itemset can be, and only
// when the window starts mid-itemset.
func (p *PseudoSequence) IsPostfix(i int) bool {
	return i == 0 && p.firstItem != 0
}

// IsCutAtRight reports whether the i-th visible itemset's base itemset
// continues past the window. Only the last visible itemset can be cut at
// right; a postfix first itemset is cut at left, which alone does not make
// it cut at right.
func (p *PseudoSequence) IsCutAtRight(i int) bool {
	if p.firstItemset+i != p.lastItemset {
		return false
	}
	return p.lastItem != len(p.seq.Itemsets[p.lastItemset])-1
}

func (p *PseudoSequence) String() string {
	return fmt.Sprintf("<PseudoSequence %d (%d,%d)-(%d,%d)>",
		p.seq.Id, p.firstItemset, p.firstItem, p.lastItemset, p.lastItem)
}
