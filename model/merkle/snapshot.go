package merkle

import (
	"time"
)

// Snapshot is the record of one committed point-in-time view of state. Leaf
// writes are versioned by the height of the snapshot that committed them, so
// any historical snapshot remains queryable after later commits.
type Snapshot struct {
	StateID   StateID
	Height    uint64
	ParentID  StateID
	Timestamp time.Time
}
