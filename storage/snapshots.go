package storage

import (
	"github.com/dgraph-io/badger/v2"

	"github.com/merklequery/merkled/model/merkle"
)

// Snapshots represents persistent storage for committed snapshot records.
// Snapshots commit in strictly increasing height order; storing a snapshot
// also indexes it by height and advances the head pointer.
type Snapshots interface {
	// Store persists the snapshot record, indexes its height and advances
	// the head.
	// Expected errors during normal operations:
	//   - storage.ErrAlreadyExists if a snapshot with the same state ID exists
	Store(snap *merkle.Snapshot) error

	// StoreTx returns a function persisting the snapshot record, indexing
	// its height and advancing the head within the given transaction, so it
	// can commit together with other entities.
	StoreTx(snap *merkle.Snapshot) func(*badger.Txn) error

	// ByStateID returns the snapshot with the given state ID.
	// Expected errors during normal operations:
	//   - storage.ErrNotFound if no snapshot is known with the given state ID
	ByStateID(stateID merkle.StateID) (*merkle.Snapshot, error)

	// ByHeight returns the snapshot committed at the given height.
	// Expected errors during normal operations:
	//   - storage.ErrNotFound if no snapshot was committed at the height
	ByHeight(height uint64) (*merkle.Snapshot, error)

	// Head returns the most recently committed snapshot.
	// Expected errors during normal operations:
	//   - storage.ErrNotFound if no snapshot has been committed yet
	Head() (*merkle.Snapshot, error)
}
