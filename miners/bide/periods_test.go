package bide

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/closeq/types/seq"
)

func pattern(itemsets ...[]int32) *seq.Pattern {
	p := seq.NewPattern()
	for _, itemset := range itemsets {
		p.AppendItemset(seq.Itemset(itemset))
	}
	return p
}

func TestMaximumPeriodUsesRightmostMatch(x *testing.T) {
	t := assert.New(x)
	// (1)(3)(2)(3) with the prefix (1)(3): anything between the 1 and the
	// last 3 could back extend at occurrence 1
	ps := wholeSequences([][][]int32{{{1}, {3}, {2}, {3}}})[0]
	pat := pattern([]int32{1}, []int32{3})

	max := ps.IthMaximumPeriod(pat, 1)
	t.NotNil(max)
	t.Equal(2, max.Size())
	t.Equal(int32(3), max.ItemAt(0, 0))
	t.Equal(int32(2), max.ItemAt(0, 1))

	// the semi maximum period stops at the first forward match of the 3,
	// which directly follows the 1
	t.Nil(ps.IthSemiMaximumPeriod(pat, 1))
}

func TestPeriodAtOccurrenceZero(x *testing.T) {
	t := assert.New(x)
	ps := wholeSequences([][][]int32{{{1}, {3}, {2}, {3}}})[0]
	pat := pattern([]int32{3})

	// everything before the last 3 is the 0th maximum period
	max := ps.IthMaximumPeriod(pat, 0)
	t.NotNil(max)
	t.Equal(3, max.Size())
	t.Equal(int32(1), max.ItemAt(0, 0))
	t.Equal(int32(2), max.ItemAt(0, 2))

	// but only what precedes the first 3 is in the semi maximum period
	semi := ps.IthSemiMaximumPeriod(pat, 0)
	t.NotNil(semi)
	t.Equal(1, semi.Size())
	t.Equal(int32(1), semi.ItemAt(0, 0))
}

func TestPeriodBoundariesCutItemsets(x *testing.T) {
	t := assert.New(x)
	// inside (1 2 3) the period between the 1 and the 3 of the pattern
	// itemset {1 3} is the lone 2, cut at both ends
	ps := wholeSequences([][][]int32{{{1, 2, 3}}})[0]
	pat := pattern([]int32{1, 3})

	for _, period := range []*PseudoSequence{
		ps.IthMaximumPeriod(pat, 1),
		ps.IthSemiMaximumPeriod(pat, 1),
	} {
		t.NotNil(period)
		t.Equal(1, period.Size())
		t.Equal(1, period.SizeOfItemsetAt(0))
		t.Equal(int32(2), period.ItemAt(0, 0))
		t.True(period.IsPostfix(0), "the period starts mid itemset")
		t.True(period.IsCutAtRight(0), "the period ends mid itemset")
	}
}

func TestPeriodNilWhenEmpty(x *testing.T) {
	t := assert.New(x)
	ps := wholeSequences([][][]int32{{{1}, {2}}})[0]
	t.Nil(ps.IthMaximumPeriod(pattern([]int32{1}), 0))
	t.Nil(ps.IthMaximumPeriod(pattern([]int32{1}, []int32{2}), 1))
	t.Nil(ps.IthSemiMaximumPeriod(pattern([]int32{1}, []int32{2}), 1))
}

func TestPeriodNilWhenPrefixAbsent(x *testing.T) {
	t := assert.New(x)
	ps := wholeSequences([][][]int32{{{1}, {2}}})[0]
	t.Nil(ps.IthMaximumPeriod(pattern([]int32{4}, []int32{2}), 1))
	t.Nil(ps.IthSemiMaximumPeriod(pattern([]int32{1}, []int32{4}), 1))
}
