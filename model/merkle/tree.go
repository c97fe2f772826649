package merkle

import (
	"fmt"
	"strconv"
)

// TreeID identifies one Merkle tree among the many maintained by the state
// engine. The identifier is opaque to the query layer; trees are not
// registered entities, so an identifier that was never written to simply has
// no leaves.
type TreeID uint32

func (t TreeID) String() string {
	return strconv.FormatUint(uint64(t), 10)
}

// ParseTreeID parses a decimal tree identifier.
func ParseTreeID(raw string) (TreeID, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid tree id %q: %w", raw, err)
	}
	return TreeID(id), nil
}

// LeafWrite is one pending leaf assignment within a tree, applied as part of
// committing a new snapshot.
type LeafWrite struct {
	Tree  TreeID
	Index uint64
	Value Leaf
}
