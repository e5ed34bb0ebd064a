package seq

import (
	"fmt"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

// An Itemset is a non-empty list of distinct items in strictly ascending
// order. The order is load-bearing: the scanners break out of itemset scans
// early on it.
type Itemset []int32

// A Sequence is an ordered list of itemsets. The Id is the 0-based position
// of the sequence in its database and is the identity used by supports and
// projection.
type Sequence struct {
	Id       int
	Itemsets []Itemset
}

// A Database is an ordered list of sequences. It is immutable after loading.
type Database struct {
	Sequences []*Sequence
}

// NewDatabase builds a database from raw itemset slices, assigning dense
// 0-based sequence ids in order.
func NewDatabase(sequences [][][]int32) *Database {
	db := &Database{Sequences: make([]*Sequence, 0, len(sequences))}
	for id, itemsets := range sequences {
		s := &Sequence{Id: id, Itemsets: make([]Itemset, 0, len(itemsets))}
		for _, itemset := range itemsets {
			s.Itemsets = append(s.Itemsets, Itemset(itemset))
		}
		db.Sequences = append(db.Sequences, s)
	}
	return db
}

// Index returns the first index in the itemset whose item equals the given
// item or -1 when the item does not occur.
func (items Itemset) Index(item int32) int {
	for j, x := range items {
		if x == item {
			return j
		} else if x > item {
			break
		}
	}
	return -1
}

func (items Itemset) String() string {
	strs := make([]string, 0, len(items))
	for _, item := range items {
		strs = append(strs, fmt.Sprintf("%d", item))
	}
	return "(" + strings.Join(strs, " ") + ")"
}

func (s *Sequence) Size() int {
	return len(s.Itemsets)
}

func (s *Sequence) String() string {
	strs := make([]string, 0, len(s.Itemsets))
	for _, itemset := range s.Itemsets {
		strs = append(strs, itemset.String())
	}
	return fmt.Sprintf("<Sequence %d %v>", s.Id, strings.Join(strs, ""))
}

// CloneMinusItems copies the sequence keeping only items accepted by keep.
// Itemsets left empty are dropped; the clone keeps the original id.
func (s *Sequence) CloneMinusItems(keep func(item int32) bool) *Sequence {
	clone := &Sequence{Id: s.Id, Itemsets: make([]Itemset, 0, len(s.Itemsets))}
	for _, itemset := range s.Itemsets {
		kept := make(Itemset, 0, len(itemset))
		for _, item := range itemset {
			if keep(item) {
				kept = append(kept, item)
			}
		}
		if len(kept) > 0 {
			clone.Itemsets = append(clone.Itemsets, kept)
		}
	}
	return clone
}

// Validate checks the database invariants: every itemset is non-empty and
// holds strictly ascending positive items.
func (db *Database) Validate() error {
	for _, s := range db.Sequences {
		for _, itemset := range s.Itemsets {
			if len(itemset) == 0 {
				return errors.Errorf("sequence %d contains an empty itemset", s.Id)
			}
			prev := int32(0)
			for _, item := range itemset {
				if item <= 0 {
					return errors.Errorf("sequence %d contains non-positive item %d", s.Id, item)
				}
				if item <= prev {
					return errors.Errorf("sequence %d has non-ascending item %d after %d", s.Id, item, prev)
				}
				prev = item
			}
		}
	}
	return nil
}
