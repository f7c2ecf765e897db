package api

import (
	"net/http"

	"github.com/assetbridgeapp/assetbridge-server/internal/http/response"
)

// mediaSizeRequest asks for the byte size of a remote media resource.
type mediaSizeRequest struct {
	MediaURL string `json:"mediaUrl"`
}

// handleMediaSize probes a media URL and reports its size. The
// upstream status code is propagated so the caller can distinguish a
// missing resource from an empty one.
func (s *Server) handleMediaSize(w http.ResponseWriter, r *http.Request) {
	body, err := decodeJSON[mediaSizeRequest](r)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	result, err := s.media.ProbeSize(r.Context(), body.MediaURL)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.JSON(w, result.Status, result, s.logger)
}
