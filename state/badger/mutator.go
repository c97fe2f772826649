package badger

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v2"

	"github.com/merklequery/merkled/model/merkle"
	"github.com/merklequery/merkled/state"
	"github.com/merklequery/merkled/storage"
)

// MutableState wraps the read-only state with the ability to commit new
// snapshots.
type MutableState struct {
	*State
	db        *badger.DB
	snapshots storage.Snapshots
	leaves    storage.Leaves
}

var _ state.Mutable = (*MutableState)(nil)

func NewMutableState(db *badger.DB, snapshots storage.Snapshots, leaves storage.Leaves) *MutableState {
	return &MutableState{
		State:     NewState(snapshots, leaves),
		db:        db,
		snapshots: snapshots,
		leaves:    leaves,
	}
}

// Extend commits the candidate snapshot with its leaf writes on top of the
// current head. The first snapshot must have height 1 and the zero state ID
// as parent.
func (m *MutableState) Extend(snap *merkle.Snapshot, writes []merkle.LeafWrite) error {

	head, err := m.snapshots.Head()
	if errors.Is(err, storage.ErrNotFound) {
		// first commit, must build on the zero state
		if snap.Height != 1 {
			return state.NewInvalidExtensionErrorf(
				"first snapshot must have height 1 (got %d)", snap.Height)
		}
		if snap.ParentID != merkle.ZeroStateID {
			return state.NewInvalidExtensionErrorf(
				"first snapshot must descend from the zero state (parent: %x)", snap.ParentID)
		}
	} else if err != nil {
		return fmt.Errorf("could not resolve head: %w", err)
	} else {
		if snap.Height != head.Height+1 {
			return state.NewInvalidExtensionErrorf(
				"snapshot height must be one above head (head: %d, got: %d)", head.Height, snap.Height)
		}
		if snap.ParentID != head.StateID {
			return state.NewInvalidExtensionErrorf(
				"snapshot parent must reference head (head: %x, parent: %x)", head.StateID, snap.ParentID)
		}
	}

	// leaf writes and the snapshot record commit in one transaction; a failed
	// extension leaves no orphan writes behind and can be retried
	err = m.db.Update(func(tx *badger.Txn) error {
		err := m.leaves.BatchStoreTx(snap.Height, writes)(tx)
		if err != nil {
			return fmt.Errorf("could not store leaf writes: %w", err)
		}
		err = m.snapshots.StoreTx(snap)(tx)
		if err != nil {
			return fmt.Errorf("could not store snapshot: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("could not execute state extension: %w", err)
	}

	return nil
}
