// Package normalize turns raw Asset Bank records into the shapes the
// connector serves. Everything here is pure: no I/O, no client calls.
package normalize

import (
	"mime"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/assetbridgeapp/assetbridge-server/internal/assetbank"
)

const (
	// defaultPreviewName stands in when a search row has no Title
	// display attribute.
	defaultPreviewName = "Untitled"

	// defaultAssetName stands in when a full asset record has no Title
	// attribute.
	defaultAssetName = "Unknown Title"
)

// Preview is the slimmed search row shown in asset pickers.
type Preview struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	FileFormat   string `json:"fileFormat,omitempty"`
	MIMEType     string `json:"mimeType,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	PreviewURL   string `json:"previewUrl,omitempty"`
}

// EntryPreview maps one search entry to its preview shape. Name falls
// back to a placeholder rather than rendering an empty row.
func EntryPreview(entry assetbank.SearchEntry) Preview {
	name := findLabeled(entry.DisplayAttributes, assetbank.LabelTitle)
	if name == "" {
		name = defaultPreviewName
	}

	return Preview{
		ID:           strconv.Itoa(entry.ID),
		Name:         name,
		FileFormat:   findLabeled(entry.DisplayAttributes, assetbank.LabelFileFormat),
		MIMEType:     MIMEType(entry.OriginalFilename),
		ThumbnailURL: entry.ThumbnailURL,
		PreviewURL:   entry.PreviewURL,
	}
}

func findLabeled(attributes []assetbank.LabeledValue, label string) string {
	for _, a := range attributes {
		if a.Label == label {
			return a.Value
		}
	}
	return ""
}

// MIMEType resolves a mime type from a filename's extension, or ""
// when the extension is missing or unknown. Parameters such as charset
// are stripped.
func MIMEType(filename string) string {
	if filename == "" {
		return ""
	}

	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename)))
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}

	return mimeType
}
