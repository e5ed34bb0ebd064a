package reporters

import (
	"bufio"
	"io"
	"os"
)

import (
	"github.com/timtadh/closeq/types/seq"
)

// File writes each pattern as one line of the sequence output format. Write
// errors propagate to the miner and abort the run; a partial file is left
// as-is.
type File struct {
	fmtr     seq.Formatter
	patterns io.WriteCloser
	buf      *bufio.Writer
}

func NewFile(path string) (*File, error) {
	patterns, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return FromWriteCloser(patterns), nil
}

func FromWriteCloser(patterns io.WriteCloser) *File {
	return &File{
		patterns: patterns,
		buf:      bufio.NewWriter(patterns),
	}
}

func (r *File) Report(p *seq.Pattern) error {
	_, err := r.buf.WriteString(r.fmtr.FormatPattern(p))
	if err != nil {
		return err
	}
	return r.buf.WriteByte('\n')
}

func (r *File) Close() error {
	err := r.buf.Flush()
	if err != nil {
		r.patterns.Close()
		return err
	}
	return r.patterns.Close()
}
