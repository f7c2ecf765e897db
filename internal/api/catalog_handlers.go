package api

import (
	"net/http"

	"github.com/assetbridgeapp/assetbridge-server/internal/http/response"
)

// handleGetFolders returns the flattened folder forest, scoped to the
// configured root folder where one is set.
func (s *Server) handleGetFolders(w http.ResponseWriter, r *http.Request) {
	folders, err := s.catalog.GetFolders(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, folders, s.logger)
}

// handleGetAssetTypes returns the asset type catalog.
func (s *Server) handleGetAssetTypes(w http.ResponseWriter, r *http.Request) {
	assetTypes, err := s.catalog.GetAssetTypes(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, assetTypes, s.logger)
}

// handleGetAttributes returns the attribute catalog with filter
// capabilities.
func (s *Server) handleGetAttributes(w http.ResponseWriter, r *http.Request) {
	attributes, err := s.catalog.GetAttributes(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, attributes, s.logger)
}

// tokenValidationResponse reports whether the configured access token
// works.
type tokenValidationResponse struct {
	Valid bool `json:"valid"`
}

// handleValidateToken probes the DAM with the configured token.
func (s *Server) handleValidateToken(w http.ResponseWriter, r *http.Request) {
	valid := s.catalog.ValidateToken(r.Context())
	response.Success(w, tokenValidationResponse{Valid: valid}, s.logger)
}
