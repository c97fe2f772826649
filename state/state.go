package state

import (
	"github.com/merklequery/merkled/model/merkle"
)

// State grants access to the leaves of the Merkle trees maintained by the
// state engine. It allows us to obtain snapshots of the state at any point of
// the committed history.
type State interface {

	// Final returns the snapshot at the most recently committed state. The
	// snapshot is resolved at the time of the call and is therefore immutable
	// over time.
	Final() Snapshot

	// AtStateID returns the snapshot with the given state ID. Whether the
	// state ID is known is only determined when the snapshot is queried.
	AtStateID(stateID merkle.StateID) Snapshot
}

// Snapshot is an immutable point-in-time view of the tree state. Snapshots
// are lazy: errors from resolving the underlying state surface on the query
// methods.
type Snapshot interface {

	// Head returns the record of the snapshot this view is pinned to.
	// Expected errors during normal operations:
	//   - state.ErrUnknownSnapshot if the referenced snapshot does not exist
	Head() (*merkle.Snapshot, error)

	// Leaf returns the value of the leaf at the given tree and index, as of
	// this snapshot.
	// Expected errors during normal operations:
	//   - storage.ErrNotFound if the index is a sparse (unwritten) slot
	//   - state.ErrUnknownSnapshot if the referenced snapshot does not exist
	Leaf(tree merkle.TreeID, index uint64) (merkle.Leaf, error)
}

// Mutable is the write side of the state engine. The query path never uses
// it; it exists so leaf writes can be ingested and so tests can build
// histories.
type Mutable interface {
	State

	// Extend commits the given snapshot with the given leaf writes on top of
	// the current head. The snapshot's height must be one above the head and
	// its parent must reference the head.
	Extend(snap *merkle.Snapshot, writes []merkle.LeafWrite) error
}
