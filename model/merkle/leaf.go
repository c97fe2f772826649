package merkle

import (
	"encoding/hex"
	"fmt"
)

// LeafLen is the fixed byte length of a leaf hash value.
const LeafLen = 32

// Leaf is the 32-byte content commitment stored at one index of a Merkle
// tree. Unwritten indices have no leaf at all; a zero-valued Leaf is a valid
// commitment, not an absence marker.
type Leaf [LeafLen]byte

func (l Leaf) String() string {
	return hex.EncodeToString(l[:])
}

// HexStringToLeaf converts a hex string to a leaf value.
func HexStringToLeaf(h string) (Leaf, error) {
	var l Leaf
	raw, err := hex.DecodeString(h)
	if err != nil {
		return l, fmt.Errorf("invalid leaf hex: %w", err)
	}
	if len(raw) != LeafLen {
		return l, fmt.Errorf("invalid leaf length: got %d, expected %d", len(raw), LeafLen)
	}
	copy(l[:], raw)
	return l, nil
}

func (l Leaf) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Leaf) UnmarshalText(text []byte) error {
	leaf, err := HexStringToLeaf(string(text))
	if err != nil {
		return err
	}
	*l = leaf
	return nil
}
