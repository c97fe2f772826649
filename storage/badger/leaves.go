package badger

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"

	"github.com/merklequery/merkled/model/merkle"
	"github.com/merklequery/merkled/storage"
	"github.com/merklequery/merkled/storage/badger/operation"
)

// Leaves implements persistent storage for versioned tree leaves around a
// badger DB. Lookups resolve the most recent write at or below the queried
// height, so they are not cached: the same (tree, index) pair resolves to
// different entries depending on the height asked for.
type Leaves struct {
	db *badger.DB
}

var _ storage.Leaves = (*Leaves)(nil)

func NewLeaves(db *badger.DB) *Leaves {
	return &Leaves{db: db}
}

func (l *Leaves) Store(height uint64, write merkle.LeafWrite) error {
	return l.db.Update(operation.InsertLeaf(write.Tree, write.Index, height, write.Value))
}

func (l *Leaves) BatchStore(height uint64, writes []merkle.LeafWrite) error {
	return l.db.Update(l.BatchStoreTx(height, writes))
}

func (l *Leaves) BatchStoreTx(height uint64, writes []merkle.LeafWrite) func(*badger.Txn) error {
	return func(tx *badger.Txn) error {
		for _, write := range writes {
			err := operation.InsertLeaf(write.Tree, write.Index, height, write.Value)(tx)
			if err != nil {
				return fmt.Errorf("could not insert leaf (tree: %d, index: %d): %w", write.Tree, write.Index, err)
			}
		}
		return nil
	}
}

func (l *Leaves) ByIndex(tree merkle.TreeID, index uint64, height uint64) (merkle.Leaf, error) {
	var leaf merkle.Leaf
	err := l.db.View(operation.RetrieveLeaf(tree, index, height, &leaf))
	if err != nil {
		return merkle.Leaf{}, err
	}
	return leaf, nil
}
