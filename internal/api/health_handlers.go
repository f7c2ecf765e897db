package api

import (
	"net/http"

	"github.com/assetbridgeapp/assetbridge-server/internal/http/response"
)

// healthResponse reports overall server health.
type healthResponse struct {
	Status string `json:"status"`
}

// handleHealthCheck reports liveness. It deliberately does not probe
// the DAM: the upstream being down must not take the connector's
// health down with it.
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	response.Success(w, healthResponse{Status: "healthy"}, s.logger)
}
