package reporters

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"io/ioutil"
	"path/filepath"
)

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/closeq/miners"
	"github.com/timtadh/closeq/types/seq"
)

func pattern(sup int, itemsets ...[]int32) *seq.Pattern {
	p := seq.NewPattern()
	for _, itemset := range itemsets {
		p.AppendItemset(seq.Itemset(itemset))
	}
	ids := set.NewSortedSet(sup)
	for id := 0; id < sup; id++ {
		ids.Add(types.Int32(id))
	}
	p.SetSupport(ids)
	return p
}

func TestFileReporter(x *testing.T) {
	t := assert.New(x)
	path := filepath.Join(x.TempDir(), "patterns.seqs")
	rpt, err := NewFile(path)
	t.Nil(err)
	t.Nil(rpt.Report(pattern(4, []int32{1, 2}, []int32{5})))
	t.Nil(rpt.Report(pattern(3, []int32{1})))
	t.Nil(rpt.Close())

	data, err := ioutil.ReadFile(path)
	t.Nil(err)
	t.Equal("1 2 -1 5 -1  #SUP: 4\n1 -1  #SUP: 3\n", string(data))
}

func TestCollector(x *testing.T) {
	t := assert.New(x)
	c := &Collector{}
	long := pattern(2, []int32{1, 2}, []int32{5})
	short := pattern(3, []int32{1})
	t.Nil(c.Report(long))
	t.Nil(c.Report(short))
	t.Nil(c.Close())

	t.Equal(2, c.Count())
	t.Equal([]*seq.Pattern{short}, c.Level(1))
	t.Equal([]*seq.Pattern{long}, c.Level(2))
	t.Nil(c.Level(0))
	t.Nil(c.Level(3))
	t.Equal([]*seq.Pattern{short, long}, c.Patterns())
}

func TestChain(x *testing.T) {
	t := assert.New(x)
	a := &Collector{}
	b := &Collector{}
	chain := &Chain{Reporters: []miners.Reporter{a, b}}
	t.Nil(chain.Report(pattern(1, []int32{7})))
	t.Nil(chain.Close())
	t.Equal(1, a.Count())
	t.Equal(1, b.Count())
}
