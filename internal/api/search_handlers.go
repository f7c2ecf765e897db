package api

import (
	"net/http"
	"strings"

	"github.com/assetbridgeapp/assetbridge-server/internal/assetbank"
	"github.com/assetbridgeapp/assetbridge-server/internal/http/response"
	"github.com/assetbridgeapp/assetbridge-server/internal/service"
)

// handleSearch runs an asset search. Folder, asset type and attribute
// filters come in as query parameters alongside keyword and paging.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	params := service.SearchParams{
		Keyword: query.Get("keyword"),
		Limit:   queryInt(r, "limit", 0),
		Offset:  queryInt(r, "offset", 0),
	}

	if folder := query.Get("folder"); folder != "" {
		params.Filters = append(params.Filters, assetbank.Filter{
			Field: assetbank.FilterFolder, Operator: "eq", Value: folder,
		})
	}
	if assetType := query.Get("assetType"); assetType != "" {
		params.Filters = append(params.Filters, assetbank.Filter{
			Field: assetbank.FilterAssetType, Operator: "eq", Value: assetType,
		})
	}
	for key := range query {
		if strings.HasPrefix(key, assetbank.FilterAttributePrefix) {
			params.Filters = append(params.Filters, assetbank.Filter{
				Field: key, Operator: "eq", Value: query.Get(key),
			})
		}
	}

	result, err := s.assets.Search(r.Context(), params)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, result, s.logger)
}
