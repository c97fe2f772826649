package backend

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/merklequery/merkled/engine/leaves"
	"github.com/merklequery/merkled/model/merkle"
	"github.com/merklequery/merkled/state"
	"github.com/merklequery/merkled/storage"
)

var _ leaves.API = (*Backend)(nil)

// Backend implements the leaf query API. It is stateless and purely
// read-only: every call resolves one snapshot, fetches the requested leaves
// from it and returns, without retaining anything across calls.
type Backend struct {
	state state.State
	log   zerolog.Logger
}

func New(state state.State, log zerolog.Logger) *Backend {
	return &Backend{
		state: state,
		log:   log.With().Str("component", "leaves_backend").Logger(),
	}
}

// GetTreeLeaves returns the values of the leaves of the given tree in the
// half-open index range [from, to), as of the given snapshot. A nil atStateID
// resolves to the current head. Sparse (unwritten) indices are omitted from
// the result, so the response may be shorter than the requested span; present
// leaves appear in ascending index order.
//
// Expected errors during normal operations:
//   - InvalidRangeError if to < from
//   - RangeTooLargeError if the span meets or exceeds MaxLeafRange
//   - status error with codes.NotFound if the snapshot does not exist
//   - status error with codes.Internal for any other engine failure
func (b *Backend) GetTreeLeaves(
	_ context.Context,
	tree merkle.TreeID,
	from uint64,
	to uint64,
	atStateID *merkle.StateID,
) ([]merkle.Leaf, error) {

	// validate the range before touching the state engine; the ordering check
	// comes first so the span subtraction below cannot wrap
	if to < from {
		return nil, NewInvalidRangeError(from, to)
	}
	span := to - from
	if span >= MaxLeafRange {
		return nil, NewRangeTooLargeError(span)
	}

	// resolve the snapshot once; every index in this call observes it
	var snap state.Snapshot
	if atStateID != nil {
		snap = b.state.AtStateID(*atStateID)
	} else {
		snap = b.state.Final()
	}

	// surface an unresolvable snapshot before fetching any leaf
	head, err := snap.Head()
	if err != nil {
		return nil, convertStateError(err)
	}

	leaves := make([]merkle.Leaf, 0, span)
	for index := from; index < to; index++ {
		leaf, err := snap.Leaf(tree, index)
		if errors.Is(err, storage.ErrNotFound) {
			// sparse slot, omitted from the response
			continue
		}
		if err != nil {
			return nil, convertStateError(err)
		}
		leaves = append(leaves, leaf)
	}

	b.log.Debug().
		Uint32("tree_id", uint32(tree)).
		Uint64("from", from).
		Uint64("to", to).
		Hex("state_id", head.StateID[:]).
		Int("leaves", len(leaves)).
		Msg("leaf range served")

	return leaves, nil
}

// GetHeadSnapshot returns the record of the most recently committed snapshot,
// so clients can pin subsequent queries to it.
//
// Expected errors during normal operations:
//   - status error with codes.NotFound if no snapshot has been committed yet
func (b *Backend) GetHeadSnapshot(_ context.Context) (*merkle.Snapshot, error) {
	head, err := b.state.Final().Head()
	if err != nil {
		return nil, convertStateError(err)
	}
	return head, nil
}

// convertStateError converts a state engine failure into a grpc status error,
// distinguishing an unknown snapshot from other engine failures.
func convertStateError(err error) error {
	if err == nil {
		return nil
	}
	if status.Code(err) != codes.Unknown {
		// already converted
		return err
	}
	if errors.Is(err, state.ErrUnknownSnapshot) {
		return status.Errorf(codes.NotFound, "snapshot not found: %v", err)
	}
	return status.Errorf(codes.Internal, "failed to query state: %v", err)
}
