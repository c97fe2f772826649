package operation

import (
	"github.com/dgraph-io/badger/v2"

	"github.com/merklequery/merkled/model/merkle"
)

// InsertLeaf persists one leaf value under its tree, index and commit height.
// The height forms the key suffix so that a reverse seek resolves the most
// recent write at or below a queried height.
func InsertLeaf(tree merkle.TreeID, index uint64, height uint64, leaf merkle.Leaf) func(*badger.Txn) error {
	return insert(makePrefix(codeLeaf, tree, index, height), leaf)
}

// RetrieveLeaf retrieves the value of the leaf at the given tree and index as
// of the given height. It returns storage.ErrNotFound for a sparse slot.
func RetrieveLeaf(tree merkle.TreeID, index uint64, height uint64, leaf *merkle.Leaf) func(*badger.Txn) error {
	return seekHighest(makePrefix(codeLeaf, tree, index), height, leaf)
}
