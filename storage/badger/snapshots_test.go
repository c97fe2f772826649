package badger_test

import (
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merklequery/merkled/module/metrics"
	"github.com/merklequery/merkled/storage"
	bstorage "github.com/merklequery/merkled/storage/badger"
	"github.com/merklequery/merkled/utils/unittest"
)

func TestSnapshotsStoreRetrieve(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		store := bstorage.NewSnapshots(metrics.NewNoopCollector(), db)

		expected := unittest.SnapshotFixture(unittest.WithHeight(1))
		err := store.Store(expected)
		require.NoError(t, err)

		byID, err := store.ByStateID(expected.StateID)
		require.NoError(t, err)
		assert.Equal(t, expected, byID)

		byHeight, err := store.ByHeight(1)
		require.NoError(t, err)
		assert.Equal(t, expected, byHeight)
	})
}

func TestSnapshotsHead(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		store := bstorage.NewSnapshots(metrics.NewNoopCollector(), db)

		_, err := store.Head()
		assert.ErrorIs(t, err, storage.ErrNotFound)

		first := unittest.SnapshotFixture(unittest.WithHeight(1))
		require.NoError(t, store.Store(first))

		head, err := store.Head()
		require.NoError(t, err)
		assert.Equal(t, first, head)

		second := unittest.SnapshotFixture(
			unittest.WithHeight(2),
			unittest.WithParent(first.StateID),
		)
		require.NoError(t, store.Store(second))

		head, err = store.Head()
		require.NoError(t, err)
		assert.Equal(t, second, head)
	})
}

func TestSnapshotsUnknown(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		store := bstorage.NewSnapshots(metrics.NewNoopCollector(), db)

		_, err := store.ByStateID(unittest.StateIDFixture())
		assert.ErrorIs(t, err, storage.ErrNotFound)

		_, err = store.ByHeight(12)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
