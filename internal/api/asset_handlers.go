package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/assetbridgeapp/assetbridge-server/internal/http/response"
)

// handleGetAsset returns one enriched asset.
func (s *Server) handleGetAsset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	detail, err := s.assets.GetAsset(r.Context(), id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, detail, s.logger)
}

// handleGetAssetParameter returns the asset mapped to a CMS parameter
// value.
func (s *Server) handleGetAssetParameter(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	value, err := s.assets.ParameterValueFor(r.Context(), id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, value, s.logger)
}

// transformURLResponse carries a built transformer conversion URL.
type transformURLResponse struct {
	URL string `json:"url"`
}

// handleGetTransformURL builds the asset transformer URL for an asset.
// Query parameters: preset (required), format and q (optional).
func (s *Server) handleGetTransformURL(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	query := r.URL.Query()

	url, err := s.catalog.TransformerURL(r.Context(), id, query.Get("preset"), query.Get("format"), query.Get("q"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, transformURLResponse{URL: url}, s.logger)
}
