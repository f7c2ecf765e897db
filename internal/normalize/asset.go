package normalize

import (
	"strconv"

	"github.com/assetbridgeapp/assetbridge-server/internal/assetbank"
)

// Detail is a full asset record with its attribute list collapsed into
// named fields. DownloadURL, Width and Height are filled in by the
// enrichment pass, not here.
type Detail struct {
	ID                          string                     `json:"id"`
	Type                        assetbank.MediaType        `json:"type"`
	Name                        string                     `json:"name"`
	Description                 string                     `json:"description"`
	AltText                     string                     `json:"altText,omitempty"`
	OriginalFilename            string                     `json:"originalFilename,omitempty"`
	FileFormat                  string                     `json:"fileFormat,omitempty"`
	MIMEType                    string                     `json:"mimeType,omitempty"`
	Size                        int64                      `json:"size,omitempty"`
	Width                       int                        `json:"width,omitempty"`
	Height                      int                        `json:"height,omitempty"`
	AvailableToAssetTransformer bool                       `json:"availableToAssetTransformer"`
	DownloadURL                 string                     `json:"downloadUrl,omitempty"`
	ContentURL                  string                     `json:"contentUrl,omitempty"`
	ContentURLURL               string                     `json:"contentUrlUrl,omitempty"`
	DisplayURL                  string                     `json:"displayUrl,omitempty"`
	ThumbnailURL                string                     `json:"thumbnailUrl,omitempty"`
	PreviewURL                  string                     `json:"previewUrl,omitempty"`
	ConversionURL               string                     `json:"conversionUrl,omitempty"`
	UnwatermarkedLargeImageURL  string                     `json:"unwatermarkedLargeImageUrl,omitempty"`
	Attributes                  []assetbank.AssetAttribute `json:"attributes,omitempty"`
}

// AssetDetail collapses an asset's attribute list into a Detail.
// Attributes with empty values are ignored. A record without an
// assetId attribute is unusable and normalizes to nil.
func AssetDetail(asset assetbank.Asset) *Detail {
	byName := make(map[string]string, len(asset.Attributes))
	for _, a := range asset.Attributes {
		if a.Value != "" {
			byName[a.Name] = a.Value
		}
	}

	id := byName[assetbank.AttrAssetID]
	if id == "" {
		return nil
	}

	name := byName[assetbank.AttrTitle]
	if name == "" {
		name = defaultAssetName
	}

	detail := &Detail{
		ID:                          id,
		Type:                        asset.Type,
		Name:                        name,
		Description:                 byName[assetbank.AttrDescription],
		AltText:                     byName[assetbank.AttrAltText],
		OriginalFilename:            byName[assetbank.AttrOriginalFilename],
		FileFormat:                  byName[assetbank.AttrFileFormat],
		MIMEType:                    MIMEType(byName[assetbank.AttrOriginalFilename]),
		AvailableToAssetTransformer: byName[assetbank.AttrAvailableToAssetTransformer] == "Yes",
		ContentURL:                  asset.ContentURL,
		ContentURLURL:               asset.ContentURLURL,
		DisplayURL:                  asset.DisplayURL,
		ThumbnailURL:                asset.ThumbnailURL,
		PreviewURL:                  asset.PreviewURL,
		ConversionURL:               asset.ConversionURL,
		UnwatermarkedLargeImageURL:  asset.UnwatermarkedLargeImageURL,
		Attributes:                  asset.Attributes,
	}

	if raw := byName[assetbank.AttrSize]; raw != "" {
		if size, err := strconv.ParseInt(raw, 10, 64); err == nil && size > 0 {
			detail.Size = size
		}
	}

	return detail
}
