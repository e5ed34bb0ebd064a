package reporters

import (
	"github.com/timtadh/closeq/miners"
	"github.com/timtadh/closeq/types/seq"
)

type Chain struct {
	Reporters []miners.Reporter
}

func (r *Chain) Report(p *seq.Pattern) error {
	for _, rpt := range r.Reporters {
		err := rpt.Report(p)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Chain) Close() error {
	for _, rpt := range r.Reporters {
		err := rpt.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
