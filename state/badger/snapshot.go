package badger

import (
	"github.com/merklequery/merkled/model/merkle"
	"github.com/merklequery/merkled/state"
	"github.com/merklequery/merkled/storage"
)

// Snapshot is a view of the tree state pinned to one committed snapshot
// record. All leaf lookups resolve against the record's height.
type Snapshot struct {
	leaves storage.Leaves
	head   *merkle.Snapshot
}

var _ state.Snapshot = (*Snapshot)(nil)

func NewSnapshot(leaves storage.Leaves, head *merkle.Snapshot) *Snapshot {
	return &Snapshot{
		leaves: leaves,
		head:   head,
	}
}

func (s *Snapshot) Head() (*merkle.Snapshot, error) {
	return s.head, nil
}

func (s *Snapshot) Leaf(tree merkle.TreeID, index uint64) (merkle.Leaf, error) {
	return s.leaves.ByIndex(tree, index, s.head.Height)
}

// invalidSnapshot represents a snapshot that failed to resolve. All queries
// return the failure that occurred during resolution.
type invalidSnapshot struct {
	err error
}

func NewInvalidSnapshot(err error) state.Snapshot {
	return &invalidSnapshot{err: err}
}

func (s *invalidSnapshot) Head() (*merkle.Snapshot, error) {
	return nil, s.err
}

func (s *invalidSnapshot) Leaf(merkle.TreeID, uint64) (merkle.Leaf, error) {
	return merkle.Leaf{}, s.err
}
