package merkle

import (
	"encoding/hex"
	"fmt"
)

// StateID is the 32-byte identifier of one committed state snapshot. In the
// original deployment this is a block hash; here it is any unique identifier
// the committer assigns.
type StateID [32]byte

// ZeroStateID is the parent of the first snapshot.
var ZeroStateID = StateID{}

func (s StateID) String() string {
	return hex.EncodeToString(s[:])
}

// HexStringToStateID converts a hex string to a state identifier.
func HexStringToStateID(h string) (StateID, error) {
	var id StateID
	raw, err := hex.DecodeString(h)
	if err != nil {
		return id, fmt.Errorf("invalid state id hex: %w", err)
	}
	if len(raw) != len(id) {
		return id, fmt.Errorf("invalid state id length: got %d, expected %d", len(raw), len(id))
	}
	copy(id[:], raw)
	return id, nil
}

func (s StateID) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *StateID) UnmarshalText(text []byte) error {
	id, err := HexStringToStateID(string(text))
	if err != nil {
		return err
	}
	*s = id
	return nil
}
