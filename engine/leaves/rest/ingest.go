package rest

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/merklequery/merkled/engine/leaves/rest/models"
	"github.com/merklequery/merkled/engine/leaves/rest/request"
	"github.com/merklequery/merkled/model/merkle"
)

// Committer commits batches of leaf writes as new snapshots.
type Committer interface {
	CommitLeaves(ctx context.Context, writes []merkle.LeafWrite) (*merkle.Snapshot, error)
}

// CreateTreeLeaves handles the leaf commit operation:
// POST /v1/trees/{tree_id}/leaves
// with body {"leaves": [{"index": <index>, "value": "<hex>"}, ...]}
func CreateTreeLeaves(committer Committer) ApiHandlerFunc {
	return func(r *http.Request) (interface{}, error) {

		var req request.CreateLeaves
		err := req.Parse(mux.Vars(r)["tree_id"], r.Body)
		if err != nil {
			return nil, NewBadRequestError(err)
		}

		snap, err := committer.CommitLeaves(r.Context(), req.Writes)
		if err != nil {
			return nil, err
		}

		var response models.SnapshotResponse
		response.Build(snap)
		return response, nil
	}
}
