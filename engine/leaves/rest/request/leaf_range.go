package request

import (
	"fmt"
	"strconv"

	"github.com/merklequery/merkled/model/merkle"
)

// LeafRange is the parsed form of one leaf range query.
type LeafRange struct {
	Tree merkle.TreeID
	From uint64
	To   uint64
	At   *merkle.StateID
}

// Parse fills the request from the raw path and query parameters. `at` is
// optional; `from` and `to` are required.
func (l *LeafRange) Parse(rawTree string, rawFrom string, rawTo string, rawAt string) error {

	tree, err := merkle.ParseTreeID(rawTree)
	if err != nil {
		return err
	}
	l.Tree = tree

	l.From, err = parseIndex("from", rawFrom)
	if err != nil {
		return err
	}
	l.To, err = parseIndex("to", rawTo)
	if err != nil {
		return err
	}

	if rawAt != "" {
		stateID, err := merkle.HexStringToStateID(rawAt)
		if err != nil {
			return err
		}
		l.At = &stateID
	}

	return nil
}

func parseIndex(name string, raw string) (uint64, error) {
	if raw == "" {
		return 0, fmt.Errorf("missing required parameter %q", name)
	}
	index, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s index %q", name, raw)
	}
	return index, nil
}
