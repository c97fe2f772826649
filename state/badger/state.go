package badger

import (
	"errors"
	"fmt"

	"github.com/merklequery/merkled/model/merkle"
	"github.com/merklequery/merkled/state"
	"github.com/merklequery/merkled/storage"
)

// State implements the state engine on top of badger-backed snapshot and leaf
// storage.
type State struct {
	snapshots storage.Snapshots
	leaves    storage.Leaves
}

var _ state.State = (*State)(nil)

func NewState(snapshots storage.Snapshots, leaves storage.Leaves) *State {
	return &State{
		snapshots: snapshots,
		leaves:    leaves,
	}
}

// Final returns the snapshot at the current head. The head is resolved here,
// once, so the returned snapshot stays pinned even if the state is extended
// afterwards.
func (s *State) Final() state.Snapshot {
	head, err := s.snapshots.Head()
	if errors.Is(err, storage.ErrNotFound) {
		return NewInvalidSnapshot(fmt.Errorf("no snapshot committed yet: %w", state.ErrUnknownSnapshot))
	}
	if err != nil {
		return NewInvalidSnapshot(fmt.Errorf("could not resolve head: %w", err))
	}
	return NewSnapshot(s.leaves, head)
}

// AtStateID returns the snapshot with the given state ID.
func (s *State) AtStateID(stateID merkle.StateID) state.Snapshot {
	snap, err := s.snapshots.ByStateID(stateID)
	if errors.Is(err, storage.ErrNotFound) {
		return NewInvalidSnapshot(state.UnknownSnapshotError(stateID))
	}
	if err != nil {
		return NewInvalidSnapshot(fmt.Errorf("could not resolve state id %x: %w", stateID, err))
	}
	return NewSnapshot(s.leaves, snap)
}
