package seq

import (
	"bytes"
	"fmt"
)

import (
	"github.com/timtadh/data-structures/types"
)

type Formatter struct{}

func (f Formatter) FileExt() string {
	return ".seqs"
}

func (f Formatter) PatternName(p *Pattern) string {
	return f.FormatPattern(p)
}

// FormatPattern renders a pattern on the output line format: items separated
// by single spaces, each itemset terminated by "-1 ", and the absolute
// support appended as " #SUP: <n>".
func (f Formatter) FormatPattern(p *Pattern) string {
	var buf bytes.Buffer
	for _, itemset := range p.itemsets {
		for _, item := range itemset {
			fmt.Fprintf(&buf, "%d ", item)
		}
		buf.WriteString("-1 ")
	}
	fmt.Fprintf(&buf, " #SUP: %d", p.AbsoluteSupport())
	return buf.String()
}

// FormatSequenceIDs renders the support set as space separated sequence ids.
func (f Formatter) FormatSequenceIDs(p *Pattern) string {
	ids := p.Support()
	if ids == nil {
		return ""
	}
	var buf bytes.Buffer
	first := true
	for id, next := ids.Items()(); next != nil; id, next = next() {
		if !first {
			buf.WriteString(" ")
		}
		fmt.Fprintf(&buf, "%d", int32(id.(types.Int32)))
		first = false
	}
	return buf.String()
}
