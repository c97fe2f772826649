package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/merklequery/merkled/engine/leaves"
	"github.com/merklequery/merkled/engine/leaves/rest/models"
	"github.com/merklequery/merkled/engine/leaves/rest/request"
)

// GetTreeLeaves handles the leaf range query:
// GET /v1/trees/{tree_id}/leaves?from=<index>&to=<index>[&at=<state_id>]
func GetTreeLeaves(api leaves.API) ApiHandlerFunc {
	return func(r *http.Request) (interface{}, error) {

		vars := mux.Vars(r)
		query := r.URL.Query()

		var req request.LeafRange
		err := req.Parse(vars["tree_id"], query.Get("from"), query.Get("to"), query.Get("at"))
		if err != nil {
			return nil, NewBadRequestError(err)
		}

		result, err := api.GetTreeLeaves(r.Context(), req.Tree, req.From, req.To, req.At)
		if err != nil {
			return nil, err
		}

		var response models.LeavesResponse
		response.Build(result)
		return response, nil
	}
}
