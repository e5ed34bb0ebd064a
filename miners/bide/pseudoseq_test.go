package bide

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/closeq/types/seq"
)

func wholeSequences(raw [][][]int32) []*PseudoSequence {
	db := seq.NewDatabase(raw)
	windows := make([]*PseudoSequence, 0, len(db.Sequences))
	for _, s := range db.Sequences {
		windows = append(windows, newPseudoSequence(s))
	}
	return windows
}

func TestPseudoSequenceWindow(x *testing.T) {
	t := assert.New(x)
	ps := wholeSequences([][][]int32{{{1, 2}, {2, 3}}})[0]
	t.Equal(0, ps.Id())
	t.Equal(2, ps.Size())
	t.Equal(2, ps.SizeOfItemsetAt(0))
	t.Equal(int32(2), ps.ItemAt(1, 0))
	t.Equal(int32(3), ps.ItemAt(1, 1))
	t.Equal(1, ps.IndexOf(0, 2))
	t.Equal(-1, ps.IndexOf(0, 3))
	t.False(ps.IsPostfix(0), "a whole sequence window has no postfix")
	t.False(ps.IsCutAtRight(0), "itemset 0 is fully visible")
	t.False(ps.IsCutAtRight(1), "itemset 1 is fully visible")
}

func TestProjectPropagatesPostfix(x *testing.T) {
	t := assert.New(x)
	ps := wholeSequences([][][]int32{{{1, 2, 3}, {2, 3}}})[0]

	child := ps.project(0, 1)
	t.Equal(2, child.Size())
	t.Equal(2, child.SizeOfItemsetAt(0))
	t.Equal(int32(2), child.ItemAt(0, 0))
	t.True(child.IsPostfix(0), "the window starts mid itemset")
	t.False(child.IsCutAtRight(0), "the window runs to the end of the itemset")

	// projecting again inside the first itemset keeps the postfix
	grand := child.project(0, 1)
	t.Equal(1, grand.SizeOfItemsetAt(0))
	t.Equal(int32(3), grand.ItemAt(0, 0))
	t.True(grand.IsPostfix(0), "postfix-ness propagates within the itemset")

	// crossing into a later itemset resets it
	next := child.project(1, 0)
	t.Equal(1, next.Size())
	t.Equal(int32(2), next.ItemAt(0, 0))
	t.False(next.IsPostfix(0), "a fresh itemset is not a postfix")
}

func TestProjectOneWindowPerOccurrence(x *testing.T) {
	t := assert.New(x)
	db := wholeSequences([][][]int32{{{1}, {2}, {1, 3}}})

	projected := project(1, db, false)
	t.True(len(projected) == 2, "expected 2 windows got %d", len(projected))
	// occurrence in itemset 0 leaves (2)(1 3)
	t.Equal(2, projected[0].Size())
	t.False(projected[0].IsPostfix(0), "crossed into itemset 1")
	// occurrence in itemset 2 leaves the postfix (3)
	t.Equal(1, projected[1].Size())
	t.True(projected[1].IsPostfix(0), "landed mid itemset")
	t.Equal(int32(3), projected[1].ItemAt(0, 0))

	t.True(len(project(1, db, true)) == 0, "no postfix occurrences in whole windows")
}

func TestProjectionSupportCount(x *testing.T) {
	t := assert.New(x)
	db := wholeSequences([][][]int32{
		{{1}, {2}},
		{{3}, {1, 2}},
		{{2}, {3}},
	})
	projected := append(project(1, db, false), project(1, db, true)...)
	ids := support()
	for _, window := range projected {
		ids.Add(types.Int32(window.Id()))
	}
	// one distinct id per database sequence with material after an
	// occurrence of the item
	t.Equal(2, ids.Size())
	t.True(ids.Has(types.Int32(0)), "sequence 0 has (2) after 1")
	t.True(ids.Has(types.Int32(1)), "sequence 1 has a postfix after 1")
}
