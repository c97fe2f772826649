package storage

import (
	"github.com/dgraph-io/badger/v2"

	"github.com/merklequery/merkled/model/merkle"
)

// Leaves represents persistent storage for tree leaves, versioned by the
// height of the snapshot that committed each write. A leaf written at height
// h is visible to all queries at heights >= h until a later write to the same
// index shadows it.
type Leaves interface {
	// Store persists a single leaf write at the given commit height.
	// It errors if the exact (tree, index, height) entry already exists.
	Store(height uint64, write merkle.LeafWrite) error

	// BatchStore persists all leaf writes of one commit atomically.
	BatchStore(height uint64, writes []merkle.LeafWrite) error

	// BatchStoreTx returns a function persisting all leaf writes of one
	// commit within the given transaction, so they can commit together with
	// other entities.
	BatchStoreTx(height uint64, writes []merkle.LeafWrite) func(*badger.Txn) error

	// ByIndex returns the value of the leaf at the given tree and index, as
	// of the given height: the most recent write at a height less than or
	// equal to it.
	// Expected errors during normal operations:
	//   - storage.ErrNotFound if the index was never written at or below the height
	ByIndex(tree merkle.TreeID, index uint64, height uint64) (merkle.Leaf, error)
}
