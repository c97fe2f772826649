// Package ingest provides the write side of the node: it commits batches of
// leaf writes as new snapshots on top of the current head. The query path
// never touches it.
package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/merklequery/merkled/model/merkle"
	"github.com/merklequery/merkled/state"
)

// Committer serializes snapshot commits against the mutable state.
type Committer struct {
	mu    sync.Mutex
	state state.Mutable
	log   zerolog.Logger
}

func NewCommitter(mutable state.Mutable, log zerolog.Logger) *Committer {
	return &Committer{
		state: mutable,
		log:   log.With().Str("component", "ingest").Logger(),
	}
}

// CommitLeaves commits the given leaf writes as one new snapshot and returns
// its record. The state ID is derived from the parent, the height and the
// writes, so identical histories produce identical identifiers.
func (c *Committer) CommitLeaves(_ context.Context, writes []merkle.LeafWrite) (*merkle.Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	parentID := merkle.ZeroStateID
	height := uint64(1)
	head, err := c.state.Final().Head()
	if err == nil {
		parentID = head.StateID
		height = head.Height + 1
	} else if !errors.Is(err, state.ErrUnknownSnapshot) {
		return nil, fmt.Errorf("could not resolve head: %w", err)
	}

	snap := &merkle.Snapshot{
		StateID:   deriveStateID(parentID, height, writes),
		Height:    height,
		ParentID:  parentID,
		Timestamp: time.Now().UTC(),
	}

	err = c.state.Extend(snap, writes)
	if err != nil {
		return nil, fmt.Errorf("could not extend state: %w", err)
	}

	c.log.Info().
		Uint64("height", height).
		Hex("state_id", snap.StateID[:]).
		Int("writes", len(writes)).
		Msg("snapshot committed")

	return snap, nil
}

func deriveStateID(parentID merkle.StateID, height uint64, writes []merkle.LeafWrite) merkle.StateID {
	h := sha256.New()
	h.Write(parentID[:])
	_ = binary.Write(h, binary.BigEndian, height)
	for _, write := range writes {
		_ = binary.Write(h, binary.BigEndian, uint32(write.Tree))
		_ = binary.Write(h, binary.BigEndian, write.Index)
		h.Write(write.Value[:])
	}
	var stateID merkle.StateID
	copy(stateID[:], h.Sum(nil))
	return stateID
}
