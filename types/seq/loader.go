package seq

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

// LoadDatabase parses the sequence file format: one sequence per line, items
// as space separated positive integers, -1 terminating each itemset and -2
// terminating the sequence. Lines starting with #, % or @ are comments.
//
//     1 2 -1 3 -1 -2
//     1 -1 2 3 -1 -2
//
// Sequence ids are the 0-based order of the loaded sequences; blank lines,
// comment lines and lines without any itemset get no id. Items inside an
// itemset must be strictly ascending.
func LoadDatabase(input io.Reader) (*Database, error) {
	db := &Database{}
	scanner := bufio.NewScanner(input)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, "#") || strings.HasPrefix(text, "%") || strings.HasPrefix(text, "@") {
			continue
		}
		s := &Sequence{Id: len(db.Sequences)}
		itemset := make(Itemset, 0, 4)
		done := false
		for _, col := range strings.Fields(text) {
			if done {
				return nil, errors.Errorf("line %d has tokens after the -2 terminator", line)
			}
			value, err := strconv.Atoi(col)
			if err != nil {
				return nil, errors.Errorf("line %d contained non int '%s'", line, col)
			}
			switch {
			case value == -1:
				if len(itemset) == 0 {
					return nil, errors.Errorf("line %d terminates an empty itemset", line)
				}
				s.Itemsets = append(s.Itemsets, itemset)
				itemset = make(Itemset, 0, 4)
			case value == -2:
				done = true
			case value <= 0:
				return nil, errors.Errorf("line %d contains non-positive item %d", line, value)
			default:
				item := int32(value)
				if len(itemset) > 0 && item <= itemset[len(itemset)-1] {
					return nil, errors.Errorf("line %d has non-ascending item %d after %d", line, item, itemset[len(itemset)-1])
				}
				itemset = append(itemset, item)
			}
		}
		if len(itemset) > 0 {
			s.Itemsets = append(s.Itemsets, itemset)
		}
		if len(s.Itemsets) > 0 {
			db.Sequences = append(db.Sequences, s)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return db, nil
}
