// Package leaves provides read access to the leaves of the Merkle trees
// maintained by the state engine, via a remote query interface.
package leaves

import (
	"context"

	"github.com/merklequery/merkled/model/merkle"
)

// API is the query surface exposed to the transport layer.
type API interface {
	// GetTreeLeaves returns the present leaves of the given tree in the
	// half-open index range [from, to), in ascending index order, as of the
	// snapshot with the given state ID (nil for the current head). Sparse
	// indices are omitted.
	GetTreeLeaves(ctx context.Context, tree merkle.TreeID, from uint64, to uint64, atStateID *merkle.StateID) ([]merkle.Leaf, error)

	// GetHeadSnapshot returns the record of the most recent snapshot.
	GetHeadSnapshot(ctx context.Context) (*merkle.Snapshot, error)
}
