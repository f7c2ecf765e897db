// Package service implements the connector's business logic on top of
// the Asset Bank client and the settings store.
package service

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/assetbridgeapp/assetbridge-server/internal/assetbank"
	"github.com/assetbridgeapp/assetbridge-server/internal/errors"
	"github.com/assetbridgeapp/assetbridge-server/internal/normalize"
	"github.com/assetbridgeapp/assetbridge-server/internal/store"
)

// SourceID identifies this connector in asset parameter values.
const SourceID = "asset-bank"

// AssetService serves asset search, detail and parameter mapping.
type AssetService struct {
	client   *assetbank.Client
	settings store.SettingsStore
	logger   *slog.Logger
}

// NewAssetService creates an asset service.
func NewAssetService(client *assetbank.Client, settings store.SettingsStore, logger *slog.Logger) *AssetService {
	return &AssetService{
		client:   client,
		settings: settings,
		logger:   logger,
	}
}

// SearchParams describes one library search request.
type SearchParams struct {
	Keyword string
	Limit   int
	Offset  int
	Filters []assetbank.Filter
}

// SearchResult is one page of asset previews. HasMore is a heuristic:
// the upstream reports no totals, so a full page means there may be
// another.
type SearchResult struct {
	Assets  []normalize.Preview `json:"assets"`
	HasMore bool                `json:"hasMore"`
}

// Search runs an asset search scoped to image assets. The File Format
// attribute id comes from the synced settings; a forced
// "attribute_<id> = Image" filter is prepended so only image assets
// come back. Caller filters missing a field, operator or value are
// dropped.
func (s *AssetService) Search(ctx context.Context, params SearchParams) (*SearchResult, error) {
	fileFormatID, err := s.fileFormatAttributeID(ctx)
	if err != nil {
		return nil, err
	}

	filters := []assetbank.Filter{{
		Field:    assetbank.FilterAttributePrefix + strconv.Itoa(fileFormatID),
		Operator: "eq",
		Value:    assetbank.FileFormatImage,
	}}
	for _, f := range params.Filters {
		if f.Field != "" && f.Operator != "" && f.Value != "" {
			filters = append(filters, f)
		}
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	entries, err := s.client.Search(ctx, assetbank.SearchParams{
		Keyword: params.Keyword,
		Limit:   limit,
		Offset:  params.Offset,
		Filters: filters,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUpstream, "asset search failed")
	}

	previews := make([]normalize.Preview, 0, len(entries))
	for _, entry := range entries {
		previews = append(previews, normalize.EntryPreview(entry))
	}

	return &SearchResult{
		Assets:  previews,
		HasMore: len(entries) == limit,
	}, nil
}

// defaultSearchLimit is the page size used when the caller passes none.
const defaultSearchLimit = 40

// GetAsset fetches one asset and enriches it: the download URL is
// resolved through the content-url indirection, user-id attribute
// values are rewritten to email addresses, and the orientation code is
// relabeled.
func (s *AssetService) GetAsset(ctx context.Context, id string) (*normalize.Detail, error) {
	asset, err := s.client.GetAssetDetails(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUpstream, "asset lookup failed")
	}
	if asset == nil {
		return nil, errors.NotFoundf("asset %q not found", id)
	}

	detail := normalize.AssetDetail(*asset)
	if detail == nil {
		return nil, errors.NotFoundf("asset %q has no usable attributes", id)
	}

	if detail.ContentURLURL != "" {
		content, err := assetbank.GetByURL[assetbank.PlainText](ctx, s.client, detail.ContentURLURL)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeUpstream, "content url lookup failed")
		}
		if content != nil {
			detail.DownloadURL = content.PlainText
		}
	}

	if err := s.rewriteUserAttributes(ctx, detail); err != nil {
		return nil, err
	}

	for i, a := range detail.Attributes {
		if a.Name == assetbank.AttrOrientation && a.Value != "" {
			if label := assetbank.OrientationLabel(a.Value); label != "" {
				detail.Attributes[i].Value = label
			}
		}
	}

	return detail, nil
}

// rewriteUserAttributes replaces user-id values of the addedBy and
// lastModifiedBy attributes with the user's email address. Both may
// point at the same user; each id is fetched once. Unresolvable ids
// keep their raw value.
func (s *AssetService) rewriteUserAttributes(ctx context.Context, detail *normalize.Detail) error {
	userAttrs := map[string]bool{
		assetbank.AttrAddedBy:        true,
		assetbank.AttrLastModifiedBy: true,
	}

	ids := make(map[int]bool)
	for _, a := range detail.Attributes {
		if !userAttrs[a.Name] || a.Value == "" {
			continue
		}
		if id, err := strconv.Atoi(a.Value); err == nil && id > 0 {
			ids[id] = true
		}
	}
	if len(ids) == 0 {
		return nil
	}

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		users = make(map[int]*assetbank.User, len(ids))
	)
	for id := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			user, err := s.client.GetUser(ctx, id)
			if err != nil {
				s.logger.Warn("user lookup failed", "user_id", id, "error", err)
				return
			}
			mu.Lock()
			users[id] = user
			mu.Unlock()
		}()
	}
	wg.Wait()

	for i, a := range detail.Attributes {
		if !userAttrs[a.Name] || a.Value == "" {
			continue
		}
		id, err := strconv.Atoi(a.Value)
		if err != nil {
			continue
		}
		if user := users[id]; user != nil && user.EmailAddress != "" {
			detail.Attributes[i].Value = user.EmailAddress
		}
	}

	return nil
}

// ParameterField is one typed field of a parameter value.
type ParameterField struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// ParameterValue is the asset parameter payload handed to the CMS. The
// custom field carries the subset of raw attributes the settings
// expose.
type ParameterValue struct {
	Type   string                    `json:"type"`
	ID     string                    `json:"_id"`
	Source string                    `json:"_source"`
	Fields map[string]ParameterField `json:"fields"`
}

// ParameterValueFor maps an enriched asset to a parameter value. The
// alt text wins over the description where both are set.
func (s *AssetService) ParameterValueFor(ctx context.Context, id string) (*ParameterValue, error) {
	detail, err := s.GetAsset(ctx, id)
	if err != nil {
		return nil, err
	}

	settings, err := s.settings.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "loading settings failed")
	}

	var exposed []int
	if settings != nil {
		exposed = settings.ExposedAttributeIDs
	}

	return buildParameterValue(detail, exposed), nil
}

func buildParameterValue(detail *normalize.Detail, exposedAttributeIDs []int) *ParameterValue {
	fields := map[string]ParameterField{
		"url":   {Type: "text", Value: detail.DownloadURL},
		"id":    {Type: "text", Value: detail.ID},
		"title": {Type: "text", Value: detail.Name},
	}

	if detail.MIMEType != "" {
		fields["mediaType"] = ParameterField{Type: "text", Value: detail.MIMEType}
	}

	description := detail.AltText
	if description == "" {
		description = detail.Description
	}
	if description != "" {
		fields["description"] = ParameterField{Type: "text", Value: description}
	}

	if detail.Width > 0 {
		fields["width"] = ParameterField{Type: "number", Value: detail.Width}
	}
	if detail.Height > 0 {
		fields["height"] = ParameterField{Type: "number", Value: detail.Height}
	}
	if detail.Size > 0 {
		fields["size"] = ParameterField{Type: "number", Value: detail.Size}
	}

	custom := map[string]string{}
	for _, a := range detail.Attributes {
		if a.Value == "" {
			continue
		}
		for _, id := range exposedAttributeIDs {
			if a.ID == id {
				custom[a.Name] = a.Value
				break
			}
		}
	}
	fields["custom"] = ParameterField{Type: SourceID, Value: custom}

	return &ParameterValue{
		Type:   normalize.Kind(detail.FileFormat),
		ID:     uuid.NewString(),
		Source: SourceID,
		Fields: fields,
	}
}

// fileFormatAttributeID finds the File Format attribute in the synced
// settings. Its absence means metadata was never synced, which is a
// configuration problem, not a search failure.
func (s *AssetService) fileFormatAttributeID(ctx context.Context) (int, error) {
	settings, err := s.settings.Load(ctx)
	if err != nil {
		return 0, errors.Wrap(err, errors.CodeInternal, "loading settings failed")
	}
	if settings == nil {
		return 0, errors.Configuration("integration settings not configured")
	}

	for _, a := range settings.Attributes {
		if a.Label == assetbank.LabelFileFormat {
			return a.ID, nil
		}
	}

	return 0, errors.Configuration(`required "File Format" attribute is missing, resync metadata`)
}
