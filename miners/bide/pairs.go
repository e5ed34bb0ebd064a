package bide

import (
	"fmt"
)

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/closeq/types/seq"
)

// pairKey is the structural context of a candidate one item extension:
// IsPrefix mirrors cut-at-right of the enclosing itemset, IsPostfix mirrors
// postfix-ness. Equality is over these three fields only; the support set
// lives on the Pair it maps to.
type pairKey struct {
	Item      int32
	IsPrefix  bool
	IsPostfix bool
}

// A Pair is a candidate extension with the set of base sequence ids
// supporting it. The id set dedups: a base sequence counts once per pair no
// matter how many windows or occurrences produced it.
type Pair struct {
	pairKey
	ids *set.SortedSet
}

func (p *Pair) SequenceIDs() *set.SortedSet {
	return p.ids
}

func (p *Pair) Count() int {
	return p.ids.Size()
}

func (p *Pair) String() string {
	return fmt.Sprintf("<Pair %d prefix=%v postfix=%v %d>", p.Item, p.IsPrefix, p.IsPostfix, p.Count())
}

func addPair(pairs map[pairKey]*Pair, id int, key pairKey) {
	pair := pairs[key]
	if pair == nil {
		pair = &Pair{pairKey: key, ids: set.NewSortedSet(10)}
		pairs[key] = pair
	}
	pair.ids.Add(types.Int32(id))
}

func pairList(pairs map[pairKey]*Pair) []*Pair {
	list := make([]*Pair, 0, len(pairs))
	for _, pair := range pairs {
		list = append(list, pair)
	}
	return list
}

// frequentPairs enumerates every item occurrence in the projected database
// with its structural context. In a projected database no window is cut at
// right, so IsPrefix stays false; the flag only varies for period windows in
// the backward check below.
func frequentPairs(db []*PseudoSequence) []*Pair {
	pairs := make(map[pairKey]*Pair)
	for _, s := range db {
		for i := 0; i < s.Size(); i++ {
			size := s.SizeOfItemsetAt(i)
			for j := 0; j < size; j++ {
				key := pairKey{
					Item:      s.ItemAt(j, i),
					IsPrefix:  s.IsCutAtRight(i),
					IsPostfix: s.IsPostfix(i),
				}
				addPair(pairs, s.Id(), key)
			}
		}
	}
	return pairList(pairs)
}

// pairsForBackwardCheck enumerates extension candidates inside the i-th
// periods of the prefix. Beyond the normal context pair, two extra variants
// are emitted: once the (i-1)-th prefix item was seen earlier in the same
// itemset the postfix flag also counts flipped, and when the i-th prefix
// item occurs in the itemset the prefix flag also counts flipped. The
// flipped variants make an occurrence inside a period line up with the
// context the same item would have had as an in-pattern occurrence.
func pairsForBackwardCheck(prefix *seq.Pattern, periods []*PseudoSequence, iPeriod int) []*Pair {
	pairs := make(map[pairKey]*Pair)
	itemI := prefix.ItemAt(iPeriod)
	var itemIm1 int32
	hasIm1 := iPeriod > 0
	if hasIm1 {
		itemIm1 = prefix.ItemAt(iPeriod - 1)
	}
	for _, period := range periods {
		for i := 0; i < period.Size(); i++ {
			size := period.SizeOfItemsetAt(i)

			sawI := false
			for j := 0; j < size; j++ {
				item := period.ItemAt(j, i)
				if item == itemI {
					sawI = true
				} else if item > itemI {
					break
				}
			}

			sawIm1 := false
			for j := 0; j < size; j++ {
				item := period.ItemAt(j, i)
				if hasIm1 && item == itemIm1 {
					sawIm1 = true
				}
				isPrefix := period.IsCutAtRight(i)
				isPostfix := period.IsPostfix(i)

				addPair(pairs, period.Id(), pairKey{item, isPrefix, isPostfix})
				if sawIm1 {
					addPair(pairs, period.Id(), pairKey{item, isPrefix, !isPostfix})
				}
				if sawI {
					addPair(pairs, period.Id(), pairKey{item, !isPrefix, isPostfix})
				}
			}
		}
	}
	return pairList(pairs)
}
