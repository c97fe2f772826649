package operation

import (
	"encoding/binary"
	"fmt"

	"github.com/merklequery/merkled/model/merkle"
)

const (

	// codes for snapshot records and their indexes
	codeSnapshot      = 1 // state ID -> snapshot record
	codeHeightToState = 2 // height -> state ID
	codeHeadHeight    = 3 // the height of the most recent snapshot

	// codes for leaf data
	codeLeaf = 10 // tree ID | leaf index | commit height -> leaf value
)

func makePrefix(code byte, keys ...interface{}) []byte {
	prefix := make([]byte, 1)
	prefix[0] = code
	for _, key := range keys {
		prefix = append(prefix, b(key)...)
	}
	return prefix
}

func b(v interface{}) []byte {
	switch i := v.(type) {
	case uint8:
		return []byte{i}
	case uint32:
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, i)
		return b
	case uint64:
		b := make([]byte, 8)
		binary.BigEndian.PutUint64(b, i)
		return b
	case merkle.TreeID:
		return b(uint32(i))
	case merkle.StateID:
		return i[:]
	default:
		panic(fmt.Sprintf("unsupported type to convert (%T)", v))
	}
}
