package api

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/dailyolive/olive-api/internal/api/shared"
)

// endpointsJSON is the static self-description document served on GET /api.
//
//go:embed endpoints.json
var endpointsJSON []byte

// EndpointsResponse wraps the endpoint-description document.
type EndpointsResponse struct {
	Endpoints json.RawMessage `json:"endpoints"`
}

// GetEndpoints handles GET /api requests with a static document describing
// every endpoint the API exposes.
func GetEndpoints(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, EndpointsResponse{
		Endpoints: json.RawMessage(endpointsJSON),
	})
}
