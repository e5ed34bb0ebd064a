package miners

import (
	"github.com/timtadh/closeq/types/seq"
)

// Note: the miner's Close function should close the reporter that was passed
// into Mine.
type Miner interface {
	Mine(*seq.Database, Reporter) error
	Close() error
}

type Reporter interface {
	Report(*seq.Pattern) error
	Close() error
}
