package seq

import (
	"fmt"
)

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

// A Pattern is a sequential pattern: an ordered list of itemsets plus the
// set of base sequence ids covering it. During the search the in-progress
// prefix is a Pattern; it is cloned before every extension so emitted
// patterns are never mutated afterwards.
type Pattern struct {
	itemsets []Itemset
	ids      *set.SortedSet
}

func NewPattern() *Pattern {
	return &Pattern{itemsets: make([]Itemset, 0, 2)}
}

// Clone copies the itemsets. The support set is not carried over; the caller
// assigns the extension's ids with SetSupport.
func (p *Pattern) Clone() *Pattern {
	clone := &Pattern{itemsets: make([]Itemset, 0, len(p.itemsets)+1)}
	for _, itemset := range p.itemsets {
		copied := make(Itemset, len(itemset))
		copy(copied, itemset)
		clone.itemsets = append(clone.itemsets, copied)
	}
	return clone
}

// AppendItemset adds an itemset after the current last one (an s-extension
// when the itemset holds a single item).
func (p *Pattern) AppendItemset(itemset Itemset) {
	p.itemsets = append(p.itemsets, itemset)
}

// ExtendLastItemset adds an item at the end of the last itemset (an
// i-extension). The item comes from a postfix occurrence, so it is greater
// than every item already in the itemset and the ascending order holds.
func (p *Pattern) ExtendLastItemset(item int32) {
	last := len(p.itemsets) - 1
	p.itemsets[last] = append(p.itemsets[last], item)
}

func (p *Pattern) SetSupport(ids *set.SortedSet) {
	p.ids = ids
}

func (p *Pattern) Support() *set.SortedSet {
	return p.ids
}

func (p *Pattern) AbsoluteSupport() int {
	if p.ids == nil {
		return 0
	}
	return p.ids.Size()
}

func (p *Pattern) HasSequence(id int) bool {
	return p.ids != nil && p.ids.Has(types.Int32(id))
}

func (p *Pattern) Itemsets() []Itemset {
	return p.itemsets
}

// Size is the number of itemsets.
func (p *Pattern) Size() int {
	return len(p.itemsets)
}

// ItemCount is the total number of item occurrences over all itemsets.
func (p *Pattern) ItemCount() int {
	count := 0
	for _, itemset := range p.itemsets {
		count += len(itemset)
	}
	return count
}

// ItemAt returns the i-th item occurrence counting across itemset
// boundaries.
func (p *Pattern) ItemAt(i int) int32 {
	for _, itemset := range p.itemsets {
		if i < len(itemset) {
			return itemset[i]
		}
		i -= len(itemset)
	}
	panic(fmt.Sprintf("item occurrence %d out of range", i))
}

func (p *Pattern) String() string {
	return fmt.Sprintf("<Pattern %s>", Formatter{}.FormatPattern(p))
}
