package bide

import (
	"time"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/closeq/config"
	"github.com/timtadh/closeq/miners"
	"github.com/timtadh/closeq/stats"
	"github.com/timtadh/closeq/types/seq"
)

// Miner enumerates every closed frequent sequential pattern of a database
// exactly once, by pattern growth over projected pseudo-databases with
// BackScan pruning and backward extension closure checks.
type Miner struct {
	Config       *config.Config
	PatternCount int
	Memory       stats.Memory
	Runtime      time.Duration

	minsup  int
	initial []*PseudoSequence
	rpt     miners.Reporter
}

func NewMiner(conf *config.Config) *Miner {
	return &Miner{
		Config: conf,
		minsup: conf.Support,
	}
}

// Mine runs the search, reporting each closed pattern to rpt as it is
// proven closed. The reporter stays open; Close closes it.
func (m *Miner) Mine(db *seq.Database, rpt miners.Reporter) error {
	if m.Config.Support < 1 {
		return errors.Errorf("support must be a positive sequence count, got %d", m.Config.Support)
	}
	if err := db.Validate(); err != nil {
		return err
	}
	m.minsup = m.Config.Support
	m.PatternCount = 0
	m.Memory.Reset()
	m.rpt = rpt
	start := time.Now()

	itemIDs := sequencesContainingItems(db)
	m.initial = m.rewrite(db, itemIDs)

	for item, ids := range itemIDs {
		if ids.Size() < m.minsup {
			continue
		}
		projected := project(item, m.initial, false)

		prefix := seq.NewPattern()
		prefix.AppendItemset(seq.Itemset{item})
		prefix.SetSupport(ids)

		successorSupport := 0
		if !m.backScanPrunes(prefix) {
			var err error
			successorSupport, err = m.recurse(prefix, projected)
			if err != nil {
				return err
			}
		}
		if prefix.AbsoluteSupport() != successorSupport {
			if !m.hasBackwardExtension(prefix) {
				if err := m.save(prefix); err != nil {
					return err
				}
			}
		}
	}
	m.Memory.Check()
	m.Runtime = time.Since(start)
	m.initial = nil
	return nil
}

func (m *Miner) Close() error {
	if m.rpt == nil {
		return nil
	}
	rpt := m.rpt
	m.rpt = nil
	return rpt.Close()
}

// LogStats reports elapsed time, pattern count and the advisory peak memory
// reading of the finished run.
func (m *Miner) LogStats() {
	errors.Logf("INFO", "total time: %v", m.Runtime)
	errors.Logf("INFO", "closed sequential patterns: %d", m.PatternCount)
	errors.Logf("INFO", "max memory: %.2f mb", m.Memory.PeakMb())
}

// sequencesContainingItems is the initial scan: item -> set of ids of the
// sequences containing it.
func sequencesContainingItems(db *seq.Database) map[int32]*set.SortedSet {
	index := make(map[int32]*set.SortedSet)
	for _, s := range db.Sequences {
		for _, itemset := range s.Itemsets {
			for _, item := range itemset {
				ids := index[item]
				if ids == nil {
					ids = set.NewSortedSet(10)
					index[item] = ids
				}
				ids.Add(types.Int32(s.Id))
			}
		}
	}
	return index
}

// rewrite clones every sequence without its infrequent items and wraps the
// non-empty clones as whole-sequence windows. The clones keep their original
// ids; the periods of every prefix are computed against these windows.
func (m *Miner) rewrite(db *seq.Database, itemIDs map[int32]*set.SortedSet) []*PseudoSequence {
	initial := make([]*PseudoSequence, 0, len(db.Sequences))
	frequent := func(item int32) bool {
		ids := itemIDs[item]
		return ids != nil && ids.Size() >= m.minsup
	}
	for _, s := range db.Sequences {
		clone := s.CloneMinusItems(frequent)
		if clone.Size() > 0 {
			initial = append(initial, newPseudoSequence(clone))
		}
	}
	return initial
}

// project builds the pseudo-database of the windows following each accepted
// occurrence of item. An occurrence inside a postfix itemset only extends an
// i-extension step and an occurrence in a whole itemset only extends an
// s-extension step, so occurrences are accepted only when the itemset's
// postfix-ness equals inSuffix. A base sequence may contribute one window
// per accepted occurrence.
func project(item int32, db []*PseudoSequence, inSuffix bool) []*PseudoSequence {
	projected := make([]*PseudoSequence, 0, len(db))
	for _, s := range db {
		for i := 0; i < s.Size(); i++ {
			index := s.IndexOf(i, item)
			if index == -1 || s.IsPostfix(i) != inSuffix {
				continue
			}
			if index != s.SizeOfItemsetAt(i)-1 {
				child := s.project(i, index+1)
				if !child.empty() {
					projected = append(projected, child)
				}
			} else if i != s.Size()-1 {
				child := s.project(i+1, 0)
				if !child.empty() {
					projected = append(projected, child)
				}
			}
		}
	}
	return projected
}

// recurse grows prefix by every frequent pair of its projected database and
// returns the largest support over the accepted extensions, which the
// caller compares against its own support for the forward extension check.
func (m *Miner) recurse(prefix *seq.Pattern, db []*PseudoSequence) (int, error) {
	pairs := frequentPairs(db)
	m.Memory.Check()

	maxSupport := 0
	for _, pair := range pairs {
		if pair.Count() < m.minsup {
			continue
		}
		clone := prefix.Clone()
		if pair.IsPostfix {
			clone.ExtendLastItemset(pair.Item)
		} else {
			clone.AppendItemset(seq.Itemset{pair.Item})
		}
		clone.SetSupport(pair.SequenceIDs())

		projected := project(pair.Item, db, pair.IsPostfix)

		successorSupport := 0
		if !m.backScanPrunes(clone) {
			var err error
			successorSupport, err = m.recurse(clone, projected)
			if err != nil {
				return 0, err
			}
		}
		if clone.AbsoluteSupport() != successorSupport {
			if !m.hasBackwardExtension(clone) {
				if err := m.save(clone); err != nil {
					return 0, err
				}
			}
		}
		if clone.AbsoluteSupport() > maxSupport {
			maxSupport = clone.AbsoluteSupport()
		}
	}
	return maxSupport, nil
}

// backScanPrunes reports whether the prefix provably cannot generate any
// closed pattern: some item fills one of its semi-maximum periods in every
// supporting sequence.
func (m *Miner) backScanPrunes(prefix *seq.Pattern) bool {
	return m.sameSupportPeriodPair(prefix, (*PseudoSequence).IthSemiMaximumPeriod)
}

// hasBackwardExtension reports whether some item fills one of the prefix's
// maximum periods in every supporting sequence; such a prefix is not
// closed.
func (m *Miner) hasBackwardExtension(prefix *seq.Pattern) bool {
	return m.sameSupportPeriodPair(prefix, (*PseudoSequence).IthMaximumPeriod)
}

func (m *Miner) sameSupportPeriodPair(
	prefix *seq.Pattern,
	period func(*PseudoSequence, *seq.Pattern, int) *PseudoSequence,
) bool {
	support := prefix.AbsoluteSupport()
	for i := 0; i < prefix.ItemCount(); i++ {
		periods := make([]*PseudoSequence, 0, support)
		for _, s := range m.initial {
			if !prefix.HasSequence(s.Id()) {
				continue
			}
			if p := period(s, prefix, i); p != nil {
				periods = append(periods, p)
			}
		}
		for _, pair := range pairsForBackwardCheck(prefix, periods, i) {
			if pair.Count() == support {
				return true
			}
		}
	}
	return false
}

func (m *Miner) save(p *seq.Pattern) error {
	m.PatternCount++
	return m.rpt.Report(p)
}
