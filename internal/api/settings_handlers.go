package api

import (
	"net/http"

	"github.com/assetbridgeapp/assetbridge-server/internal/http/response"
	"github.com/assetbridgeapp/assetbridge-server/internal/store"
)

// handleGetSettings returns the persisted settings document. Before
// the first save the data field is simply absent; the UI treats that
// as "not configured yet".
func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.catalog.GetSettings(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, settings, s.logger)
}

// handlePutSettings validates and replaces the settings document.
func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := decodeJSON[store.Settings](r)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	if err := s.catalog.SaveSettings(r.Context(), settings); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, settings, s.logger)
}

// handleSyncSettings refreshes the attribute and folder snapshots from
// the DAM and returns the updated document.
func (s *Server) handleSyncSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.catalog.Sync(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, settings, s.logger)
}
