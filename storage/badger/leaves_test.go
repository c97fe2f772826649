package badger_test

import (
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merklequery/merkled/model/merkle"
	"github.com/merklequery/merkled/storage"
	bstorage "github.com/merklequery/merkled/storage/badger"
	"github.com/merklequery/merkled/utils/unittest"
)

func TestLeavesStoreRetrieve(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		store := bstorage.NewLeaves(db)

		write := unittest.LeafWriteFixture()
		err := store.Store(1, write)
		require.NoError(t, err)

		actual, err := store.ByIndex(write.Tree, write.Index, 1)
		require.NoError(t, err)
		assert.Equal(t, write.Value, actual)

		// sparse below the commit height
		_, err = store.ByIndex(write.Tree, write.Index, 0)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestLeavesBatchStore(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		store := bstorage.NewLeaves(db)

		tree := merkle.TreeID(7)
		writes := []merkle.LeafWrite{
			{Tree: tree, Index: 0, Value: unittest.LeafFixture()},
			{Tree: tree, Index: 1, Value: unittest.LeafFixture()},
			{Tree: tree, Index: 3, Value: unittest.LeafFixture()},
		}
		err := store.BatchStore(1, writes)
		require.NoError(t, err)

		for _, write := range writes {
			actual, err := store.ByIndex(tree, write.Index, 1)
			require.NoError(t, err)
			assert.Equal(t, write.Value, actual)
		}

		// index 2 was not part of the batch
		_, err = store.ByIndex(tree, 2, 1)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestLeavesShadowing(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		store := bstorage.NewLeaves(db)

		tree := merkle.TreeID(1)
		first := unittest.LeafFixture()
		second := unittest.LeafFixture()

		require.NoError(t, store.Store(1, merkle.LeafWrite{Tree: tree, Index: 5, Value: first}))
		require.NoError(t, store.Store(3, merkle.LeafWrite{Tree: tree, Index: 5, Value: second}))

		actual, err := store.ByIndex(tree, 5, 2)
		require.NoError(t, err)
		assert.Equal(t, first, actual)

		actual, err = store.ByIndex(tree, 5, 3)
		require.NoError(t, err)
		assert.Equal(t, second, actual)
	})
}
