package models

import (
	"time"

	"github.com/merklequery/merkled/model/merkle"
)

// LeavesResponse carries the leaf values of one range query as hex strings,
// in ascending index order with sparse indices omitted.
type LeavesResponse struct {
	Leaves []string `json:"leaves"`
}

func (r *LeavesResponse) Build(leaves []merkle.Leaf) {
	r.Leaves = make([]string, len(leaves))
	for i, leaf := range leaves {
		r.Leaves[i] = leaf.String()
	}
}

// SnapshotResponse carries one snapshot record.
type SnapshotResponse struct {
	StateID   string    `json:"state_id"`
	Height    uint64    `json:"height"`
	ParentID  string    `json:"parent_id"`
	Timestamp time.Time `json:"timestamp"`
}

func (r *SnapshotResponse) Build(snap *merkle.Snapshot) {
	r.StateID = snap.StateID.String()
	r.Height = snap.Height
	r.ParentID = snap.ParentID.String()
	r.Timestamp = snap.Timestamp
}
