package rest

import (
	"net/http"

	"github.com/merklequery/merkled/engine/leaves"
	"github.com/merklequery/merkled/engine/leaves/rest/models"
)

// GetHeadSnapshot handles: GET /v1/snapshots/head
func GetHeadSnapshot(api leaves.API) ApiHandlerFunc {
	return func(r *http.Request) (interface{}, error) {

		head, err := api.GetHeadSnapshot(r.Context())
		if err != nil {
			return nil, err
		}

		var response models.SnapshotResponse
		response.Build(head)
		return response, nil
	}
}
