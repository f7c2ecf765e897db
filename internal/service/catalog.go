package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/assetbridgeapp/assetbridge-server/internal/assetbank"
	"github.com/assetbridgeapp/assetbridge-server/internal/errors"
	"github.com/assetbridgeapp/assetbridge-server/internal/store"
	"github.com/assetbridgeapp/assetbridge-server/internal/validation"
)

// CatalogService serves the DAM catalogs (folders, attributes, asset
// types) and manages the persisted integration settings.
type CatalogService struct {
	client    *assetbank.Client
	settings  store.SettingsStore
	validator *validation.Validator
	logger    *slog.Logger
}

// NewCatalogService creates a catalog service.
func NewCatalogService(client *assetbank.Client, settings store.SettingsStore, validator *validation.Validator, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		client:    client,
		settings:  settings,
		validator: validator,
		logger:    logger,
	}
}

// GetFolders fetches the flattened folder forest. When the settings
// pin a root folder, only that folder and its descendants come back.
func (c *CatalogService) GetFolders(ctx context.Context) ([]assetbank.FlatFolder, error) {
	folders, err := c.client.GetFlatFolders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUpstream, "folder listing failed")
	}

	settings, err := c.settings.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "loading settings failed")
	}
	if settings == nil || settings.RootFolder == nil {
		return folders, nil
	}

	root := settings.RootFolder.Path
	scoped := make([]assetbank.FlatFolder, 0, len(folders))
	for _, f := range folders {
		if f.Path == root || strings.HasPrefix(f.Path, root+"/") {
			scoped = append(scoped, f)
		}
	}
	return scoped, nil
}

// AttributeInfo is an attribute definition annotated with its filter
// capabilities.
type AttributeInfo struct {
	assetbank.Attribute
	Filterable bool                 `json:"filterable"`
	Selectable bool                 `json:"selectable"`
	Operators  []assetbank.Operator `json:"operators,omitempty"`
}

// GetAttributes fetches the attribute catalog annotated with filter
// capabilities per attribute type.
func (c *CatalogService) GetAttributes(ctx context.Context) ([]AttributeInfo, error) {
	attributes, err := c.client.GetAttributes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUpstream, "attribute listing failed")
	}

	infos := make([]AttributeInfo, 0, len(attributes))
	for _, a := range attributes {
		infos = append(infos, AttributeInfo{
			Attribute:  a,
			Filterable: assetbank.Filterable(a.TypeID),
			Selectable: assetbank.Selectable(a.TypeID),
			Operators:  assetbank.OperatorsFor(a.TypeID),
		})
	}
	return infos, nil
}

// GetAssetTypes fetches the asset type catalog.
func (c *CatalogService) GetAssetTypes(ctx context.Context) ([]assetbank.AssetType, error) {
	assetTypes, err := c.client.GetAssetTypes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUpstream, "asset type listing failed")
	}
	return assetTypes, nil
}

// ValidateToken reports whether the configured access token works.
func (c *CatalogService) ValidateToken(ctx context.Context) bool {
	return c.client.IsValidAccessToken(ctx)
}

// GetSettings loads the persisted settings, nil when never saved.
func (c *CatalogService) GetSettings(ctx context.Context) (*store.Settings, error) {
	settings, err := c.settings.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "loading settings failed")
	}
	return settings, nil
}

// SaveSettings validates and persists the settings document. Beyond
// structural validation, the attribute snapshot must contain the File
// Format attribute with an Image option: search scoping depends on it.
func (c *CatalogService) SaveSettings(ctx context.Context, settings *store.Settings) error {
	if err := c.validator.Validate(settings); err != nil {
		return err
	}

	fileFormat := findAttributeByLabel(settings.Attributes, assetbank.LabelFileFormat)
	if fileFormat == nil {
		return errors.Validation(`required "File Format" attribute is missing, resync metadata`)
	}

	hasImage := false
	for _, v := range fileFormat.ListValues {
		if v.Value == assetbank.FileFormatImage {
			hasImage = true
			break
		}
	}
	if !hasImage {
		return errors.Validationf(`"File Format" attribute is missing %q value in the list of possible options`, assetbank.FileFormatImage)
	}

	if err := c.settings.Save(ctx, settings); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "saving settings failed")
	}

	c.logger.Info("settings saved",
		"attributes", len(settings.Attributes),
		"folders", len(settings.Folders),
	)
	return nil
}

// Sync refreshes the attribute and folder snapshots from the DAM,
// preserving the rest of the settings document. A sync before any
// settings were saved produces a document holding only the snapshots.
func (c *CatalogService) Sync(ctx context.Context) (*store.Settings, error) {
	attributes, err := c.client.GetAttributes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUpstream, "attribute sync failed")
	}

	folders, err := c.client.GetFlatFolders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUpstream, "folder sync failed")
	}

	settings, err := c.settings.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "loading settings failed")
	}
	if settings == nil {
		settings = &store.Settings{}
	}

	settings.Attributes = attributes
	settings.Folders = folders

	if err := c.settings.Save(ctx, settings); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "saving settings failed")
	}

	c.logger.Info("metadata synced",
		"attributes", len(attributes),
		"folders", len(folders),
	)
	return settings, nil
}

// TransformerURL builds the asset transformer conversion URL for an
// asset. The preset must be one of the configured presets.
func (c *CatalogService) TransformerURL(ctx context.Context, assetID, preset, format, quality string) (string, error) {
	settings, err := c.settings.Load(ctx)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "loading settings failed")
	}
	if settings == nil || settings.AssetTransformerURL == "" {
		return "", errors.Configuration("asset transformer is not configured")
	}

	allowed := false
	for _, p := range settings.AssetTransformerPresets {
		if p == preset {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", errors.Validationf("unknown transformer preset %q", preset)
	}

	url := buildTransformerURL(settings.AssetTransformerURL, preset, assetID, format, quality)
	if url == "" {
		return "", errors.Validation("asset id and preset are required")
	}
	return url, nil
}

// buildTransformerURL assembles
// {base}/conversion/{preset}/assets/{id}[.{format}][?q={quality}].
// Any missing required part yields "".
func buildTransformerURL(base, preset, assetID, format, quality string) string {
	if base == "" || preset == "" || assetID == "" {
		return ""
	}

	url := strings.TrimSuffix(base, "/") + "/conversion/" + preset + "/assets/" + assetID
	if format != "" {
		url += "." + format
	}
	if quality != "" {
		url += "?q=" + quality
	}
	return url
}

func findAttributeByLabel(attributes []assetbank.Attribute, label string) *assetbank.Attribute {
	for i := range attributes {
		if attributes[i].Label == label {
			return &attributes[i]
		}
	}
	return nil
}
