package unittest

import (
	"crypto/rand"
	"time"

	"github.com/merklequery/merkled/model/merkle"
)

// LeafFixture returns a leaf with a random 32-byte value.
func LeafFixture() merkle.Leaf {
	var leaf merkle.Leaf
	read(leaf[:])
	return leaf
}

// LeafFixtures returns n random leaves.
func LeafFixtures(n int) []merkle.Leaf {
	leaves := make([]merkle.Leaf, n)
	for i := range leaves {
		leaves[i] = LeafFixture()
	}
	return leaves
}

// StateIDFixture returns a random state identifier.
func StateIDFixture() merkle.StateID {
	var id merkle.StateID
	read(id[:])
	return id
}

// LeafWriteFixture returns a random leaf write for tree 1.
func LeafWriteFixture() merkle.LeafWrite {
	return merkle.LeafWrite{
		Tree:  merkle.TreeID(1),
		Index: 0,
		Value: LeafFixture(),
	}
}

func WithHeight(height uint64) func(*merkle.Snapshot) {
	return func(snap *merkle.Snapshot) {
		snap.Height = height
	}
}

func WithParent(parentID merkle.StateID) func(*merkle.Snapshot) {
	return func(snap *merkle.Snapshot) {
		snap.ParentID = parentID
	}
}

// SnapshotFixture returns a snapshot record with a random state ID at height
// 1, modified by the given options.
func SnapshotFixture(opts ...func(*merkle.Snapshot)) *merkle.Snapshot {
	snap := &merkle.Snapshot{
		StateID:   StateIDFixture(),
		Height:    1,
		ParentID:  merkle.ZeroStateID,
		Timestamp: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(snap)
	}
	return snap
}

func read(buf []byte) {
	_, err := rand.Read(buf)
	if err != nil {
		panic("could not read random bytes: " + err.Error())
	}
}
