package assetbank

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

const (
	// defaultSearchPageSize applies when the caller passes no limit.
	defaultSearchPageSize = 100
)

// SearchParams describes one search request. Pagination is offset-based
// here and translated to the upstream's page-based scheme.
type SearchParams struct {
	Keyword string
	Limit   int
	Offset  int
	Filters []Filter
}

// Search queries the asset search endpoint and returns the raw entry
// list. A malformed (non-array) upstream payload resolves to nil.
//
// A folder filter scopes the search to that category and always
// includes subfolder members. An assetType filter maps to the
// asset-type-id parameter. Filters with an "attribute_<id>" field pass
// through verbatim when their value is non-empty.
func (c *Client) Search(ctx context.Context, params SearchParams) ([]SearchEntry, error) {
	query := url.Values{}

	if folder := findFilter(params.Filters, FilterFolder); folder != "" {
		query.Set("permissionCategoryForm.categoryIds", folder)
		// include content from subfolders as well
		query.Set("includeImplicitCategoryMembers", "true")
	}

	if assetType := findFilter(params.Filters, FilterAssetType); assetType != "" {
		query.Set("assetTypeId", assetType)
	}

	for _, f := range params.Filters {
		if strings.HasPrefix(f.Field, FilterAttributePrefix) && f.Value != "" {
			query.Set(f.Field, f.Value)
		}
	}

	if params.Keyword != "" {
		query.Set("keywords", params.Keyword)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultSearchPageSize
	}
	offset := params.Offset
	if offset <= 0 {
		offset = 0
	}

	// Upstream pages are zero-based: page = ceil(offset / limit).
	page := (offset + limit - 1) / limit
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(limit))

	entries, err := fetchJSON[[]SearchEntry](ctx, c, "/rest/asset-search?"+query.Encode())
	if err != nil || entries == nil {
		return nil, err
	}

	return *entries, nil
}

// findFilter returns the value of the first filter with the given
// field, or "".
func findFilter(filters []Filter, field string) string {
	for _, f := range filters {
		if f.Field == field {
			return f.Value
		}
	}
	return ""
}
