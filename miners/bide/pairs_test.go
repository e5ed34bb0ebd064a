package bide

import "testing"
import "github.com/stretchr/testify/assert"

func findPair(pairs []*Pair, item int32, isPrefix, isPostfix bool) *Pair {
	for _, pair := range pairs {
		if pair.Item == item && pair.IsPrefix == isPrefix && pair.IsPostfix == isPostfix {
			return pair
		}
	}
	return nil
}

func TestFrequentPairs(x *testing.T) {
	t := assert.New(x)
	db := wholeSequences([][][]int32{
		{{1, 2}, {3}},
		{{1, 2}, {3}},
	})
	projected := project(1, db, false)
	pairs := frequentPairs(projected)
	t.True(len(pairs) == 2, "expected 2 pairs got %v", pairs)

	postfix2 := findPair(pairs, 2, false, true)
	t.NotNil(postfix2, "the 2 occurs in the postfix of (1 2)")
	t.Equal(2, postfix2.Count())

	whole3 := findPair(pairs, 3, false, false)
	t.NotNil(whole3, "the 3 occurs in a whole itemset")
	t.Equal(2, whole3.Count())
}

func TestPairSupportSetDedups(x *testing.T) {
	t := assert.New(x)
	// two occurrences of 2 after the 1 in the same sequence count once
	db := wholeSequences([][][]int32{{{1}, {2}, {2}}})
	pairs := frequentPairs(project(1, db, false))
	pair := findPair(pairs, 2, false, false)
	t.NotNil(pair)
	t.Equal(1, pair.Count())
}

func TestBackwardCheckPairsEmitFlippedVariants(x *testing.T) {
	t := assert.New(x)
	// scanning the whole window of (1 2) at occurrence 1 of the prefix
	// (1)(2): the in itemset 2 flips the prefix flag, the seen 1 flips the
	// postfix flag
	periods := wholeSequences([][][]int32{{{1, 2}}})
	pairs := pairsForBackwardCheck(pattern([]int32{1}, []int32{2}), periods, 1)

	for _, expected := range []struct {
		item               int32
		isPrefix, isPostfix bool
	}{
		{1, false, false},
		{1, false, true},
		{1, true, false},
		{2, false, false},
		{2, false, true},
		{2, true, false},
	} {
		pair := findPair(pairs, expected.item, expected.isPrefix, expected.isPostfix)
		t.NotNil(pair, "missing pair %v", expected)
		if pair != nil {
			t.Equal(1, pair.Count())
		}
	}
	t.True(len(pairs) == 6, "expected 6 pairs got %v", pairs)
}

func TestBackwardCheckPairsPostfixPeriod(x *testing.T) {
	t := assert.New(x)
	// the period between the 1 and the first 3 of the prefix (1)(3) inside
	// (1 2)(3) is the postfix (2); its normal pair already carries the
	// postfix flag
	ps := wholeSequences([][][]int32{{{1, 2}, {3}}})[0]
	pat := pattern([]int32{1}, []int32{3})
	period := ps.IthMaximumPeriod(pat, 1)
	t.NotNil(period)

	pairs := pairsForBackwardCheck(pat, []*PseudoSequence{period}, 1)
	t.True(len(pairs) == 1, "expected 1 pair got %v", pairs)
	pair := findPair(pairs, 2, false, true)
	t.NotNil(pair)
	t.Equal(1, pair.Count())
}
