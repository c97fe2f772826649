package merkle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merklequery/merkled/model/merkle"
)

func TestLeafHexRoundtrip(t *testing.T) {
	var leaf merkle.Leaf
	for i := 0; i < merkle.LeafLen; i++ {
		leaf[i] = byte(i)
	}

	decoded, err := merkle.HexStringToLeaf(leaf.String())
	require.NoError(t, err)
	assert.Equal(t, leaf, decoded)
}

func TestHexStringToLeafInvalid(t *testing.T) {
	_, err := merkle.HexStringToLeaf("zz")
	assert.Error(t, err)

	// valid hex but wrong length
	_, err = merkle.HexStringToLeaf("deadbeef")
	assert.Error(t, err)
}

func TestStateIDHexRoundtrip(t *testing.T) {
	var id merkle.StateID
	id[0] = 0xff
	id[31] = 0x01

	decoded, err := merkle.HexStringToStateID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, decoded)

	_, err = merkle.HexStringToStateID("abcd")
	assert.Error(t, err)
}

func TestParseTreeID(t *testing.T) {
	id, err := merkle.ParseTreeID("7")
	require.NoError(t, err)
	assert.Equal(t, merkle.TreeID(7), id)

	_, err = merkle.ParseTreeID("-1")
	assert.Error(t, err)

	// exceeds 32 bits
	_, err = merkle.ParseTreeID("4294967296")
	assert.Error(t, err)
}
