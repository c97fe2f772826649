package request

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/merklequery/merkled/model/merkle"
)

// maxCreateLeaves bounds the number of writes accepted in one commit.
const maxCreateLeaves = 4096

type leafWriteBody struct {
	Index *uint64 `json:"index"`
	Value string  `json:"value"`
}

type createLeavesBody struct {
	Leaves []leafWriteBody `json:"leaves"`
}

// CreateLeaves is the parsed form of one leaf commit request.
type CreateLeaves struct {
	Tree   merkle.TreeID
	Writes []merkle.LeafWrite
}

// Parse fills the request from the raw tree path parameter and the JSON body.
func (c *CreateLeaves) Parse(rawTree string, body io.Reader) error {

	tree, err := merkle.ParseTreeID(rawTree)
	if err != nil {
		return err
	}
	c.Tree = tree

	var raw createLeavesBody
	err = json.NewDecoder(body).Decode(&raw)
	if err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if len(raw.Leaves) == 0 {
		return fmt.Errorf("request must contain at least one leaf")
	}
	if len(raw.Leaves) > maxCreateLeaves {
		return fmt.Errorf("request contains too many leaves (%d, max %d)", len(raw.Leaves), maxCreateLeaves)
	}

	c.Writes = make([]merkle.LeafWrite, len(raw.Leaves))
	seen := make(map[uint64]struct{}, len(raw.Leaves))
	for i, leaf := range raw.Leaves {
		if leaf.Index == nil {
			return fmt.Errorf("leaf %d is missing an index", i)
		}
		if _, ok := seen[*leaf.Index]; ok {
			return fmt.Errorf("leaf %d repeats index %d", i, *leaf.Index)
		}
		seen[*leaf.Index] = struct{}{}
		value, err := merkle.HexStringToLeaf(leaf.Value)
		if err != nil {
			return fmt.Errorf("leaf %d: %w", i, err)
		}
		c.Writes[i] = merkle.LeafWrite{
			Tree:  tree,
			Index: *leaf.Index,
			Value: value,
		}
	}

	return nil
}
