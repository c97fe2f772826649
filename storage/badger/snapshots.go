package badger

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v2"

	"github.com/merklequery/merkled/model/merkle"
	"github.com/merklequery/merkled/module"
	"github.com/merklequery/merkled/storage"
	"github.com/merklequery/merkled/storage/badger/operation"
)

// Snapshots implements persistent storage for snapshot records around a
// badger DB, with a read-through cache keyed by state ID.
type Snapshots struct {
	db    *badger.DB
	cache *Cache
}

var _ storage.Snapshots = (*Snapshots)(nil)

func NewSnapshots(collector module.CacheMetrics, db *badger.DB) *Snapshots {

	retrieve := func(key interface{}) (interface{}, error) {
		stateID := key.(merkle.StateID)
		var snap merkle.Snapshot
		err := db.View(operation.RetrieveSnapshot(stateID, &snap))
		if err != nil {
			return nil, err
		}
		return &snap, nil
	}

	s := &Snapshots{
		db: db,
		cache: newCache(collector,
			withLimit(4096),
			withRetrieve(retrieve),
			withResource("snapshot")),
	}

	return s
}

// Store persists the snapshot, indexes its height and advances the head, all
// in one transaction.
func (s *Snapshots) Store(snap *merkle.Snapshot) error {
	err := s.db.Update(s.StoreTx(snap))
	if err != nil {
		return err
	}
	s.cache.Insert(snap.StateID, snap)
	return nil
}

// StoreTx persists the snapshot within the given transaction. The cache is
// not populated here; it fills on the next read instead, as the surrounding
// transaction may still abort.
func (s *Snapshots) StoreTx(snap *merkle.Snapshot) func(*badger.Txn) error {
	return func(tx *badger.Txn) error {
		err := operation.InsertSnapshot(snap.StateID, snap)(tx)
		if err != nil {
			return fmt.Errorf("could not insert snapshot: %w", err)
		}
		err = operation.IndexSnapshotHeight(snap.Height, snap.StateID)(tx)
		if err != nil {
			return fmt.Errorf("could not index snapshot height: %w", err)
		}
		err = operation.UpdateHeadHeight(snap.Height)(tx)
		if err != nil {
			return fmt.Errorf("could not update head height: %w", err)
		}
		return nil
	}
}

func (s *Snapshots) ByStateID(stateID merkle.StateID) (*merkle.Snapshot, error) {
	snap, err := s.cache.Get(stateID)
	if err != nil {
		return nil, err
	}
	return snap.(*merkle.Snapshot), nil
}

func (s *Snapshots) ByHeight(height uint64) (*merkle.Snapshot, error) {
	var stateID merkle.StateID
	err := s.db.View(operation.LookupSnapshotHeight(height, &stateID))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("could not look up snapshot height: %w", err)
	}
	return s.ByStateID(stateID)
}

func (s *Snapshots) Head() (*merkle.Snapshot, error) {
	var height uint64
	err := s.db.View(operation.RetrieveHeadHeight(&height))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("could not retrieve head height: %w", err)
	}
	return s.ByHeight(height)
}
