package reporters

import (
	"github.com/timtadh/closeq/types/seq"
)

// Collector keeps patterns in memory, bucketed by the number of itemsets.
// Iteration order inside a bucket is the order patterns were reported in.
type Collector struct {
	levels [][]*seq.Pattern
	count  int
}

func (c *Collector) Report(p *seq.Pattern) error {
	k := p.Size()
	for len(c.levels) <= k {
		c.levels = append(c.levels, nil)
	}
	c.levels[k] = append(c.levels[k], p)
	c.count++
	return nil
}

// Level returns the patterns with exactly k itemsets.
func (c *Collector) Level(k int) []*seq.Pattern {
	if k < 0 || k >= len(c.levels) {
		return nil
	}
	return c.levels[k]
}

// Levels returns one more than the largest number of itemsets of any
// collected pattern, so every non-empty bucket has a k below it.
func (c *Collector) Levels() int {
	return len(c.levels)
}

func (c *Collector) Count() int {
	return c.count
}

// Patterns flattens the buckets, shortest patterns first.
func (c *Collector) Patterns() []*seq.Pattern {
	patterns := make([]*seq.Pattern, 0, c.count)
	for _, level := range c.levels {
		patterns = append(patterns, level...)
	}
	return patterns
}

func (c *Collector) Close() error {
	return nil
}
