package operation

import (
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merklequery/merkled/model/merkle"
	"github.com/merklequery/merkled/storage"
	"github.com/merklequery/merkled/utils/unittest"
)

func TestInsertRetrieveSnapshot(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		expected := unittest.SnapshotFixture()

		err := db.Update(InsertSnapshot(expected.StateID, expected))
		require.NoError(t, err)

		var actual merkle.Snapshot
		err = db.View(RetrieveSnapshot(expected.StateID, &actual))
		require.NoError(t, err)
		assert.Equal(t, expected.StateID, actual.StateID)
		assert.Equal(t, expected.Height, actual.Height)
		assert.Equal(t, expected.ParentID, actual.ParentID)
		assert.True(t, expected.Timestamp.Equal(actual.Timestamp))

		err = db.Update(InsertSnapshot(expected.StateID, expected))
		assert.ErrorIs(t, err, storage.ErrAlreadyExists)
	})
}

func TestIndexLookupSnapshotHeight(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		stateID := unittest.StateIDFixture()

		err := db.Update(IndexSnapshotHeight(42, stateID))
		require.NoError(t, err)

		var actual merkle.StateID
		err = db.View(LookupSnapshotHeight(42, &actual))
		require.NoError(t, err)
		assert.Equal(t, stateID, actual)

		err = db.View(LookupSnapshotHeight(43, &actual))
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestHeadHeight(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		var height uint64
		err := db.View(RetrieveHeadHeight(&height))
		assert.ErrorIs(t, err, storage.ErrNotFound)

		err = db.Update(InsertHeadHeight(1))
		require.NoError(t, err)

		err = db.Update(UpdateHeadHeight(2))
		require.NoError(t, err)

		err = db.View(RetrieveHeadHeight(&height))
		require.NoError(t, err)
		assert.Equal(t, uint64(2), height)
	})
}
