package assetbank

// MediaType is the asset `type` discriminator. Its absence on an asset
// response is the upstream convention for "not found" disguised as 200.
type MediaType string

// Known media types.
const (
	MediaImage MediaType = "Image"
	MediaVideo MediaType = "Video"
	MediaAudio MediaType = "Audio"
	MediaFile  MediaType = "File"
)

// SearchEntry is one row of an asset search response.
type SearchEntry struct {
	ID                int            `json:"id"`
	OriginalFilename  string         `json:"originalFilename,omitempty"`
	FullAssetURL      string         `json:"fullAssetUrl,omitempty"`
	PreviewURL        string         `json:"previewUrl,omitempty"`
	ThumbnailURL      string         `json:"thumbnailUrl,omitempty"`
	Attributes        []NamedValue   `json:"attributes"`
	DisplayAttributes []LabeledValue `json:"displayAttributes"`
}

// NamedValue is an attribute keyed by internal name.
type NamedValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// LabeledValue is an attribute keyed by display label.
type LabeledValue struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Asset is a full asset record. The *Url fields are links into the
// Asset Bank resource graph; contentUrlUrl resolves to a plain-text
// redirect target for the original file.
type Asset struct {
	Type                       MediaType        `json:"type"`
	URL                        string           `json:"url,omitempty"`
	ContentURL                 string           `json:"contentUrl,omitempty"`
	ContentURLURL              string           `json:"contentUrlUrl,omitempty"`
	DisplayURL                 string           `json:"displayUrl,omitempty"`
	ThumbnailURL               string           `json:"thumbnailUrl,omitempty"`
	PreviewURL                 string           `json:"previewUrl,omitempty"`
	ConversionURL              string           `json:"conversionUrl,omitempty"`
	UnwatermarkedLargeImageURL string           `json:"unwatermarkedLargeImageUrl,omitempty"`
	Attributes                 []AssetAttribute `json:"attributes,omitempty"`
}

// AssetAttribute is one attribute value attached to an asset.
type AssetAttribute struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Label string `json:"label,omitempty"`
	Value string `json:"value"`
}

// AssetType is a resolved asset type resource.
type AssetType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Attribute is a resolved attribute definition. ListValues is empty
// unless the attribute is list-typed.
type Attribute struct {
	ID         int         `json:"id"`
	Label      string      `json:"label"`
	TypeID     int         `json:"typeId"`
	ListValues []ListValue `json:"listValues"`
}

// ListValue is one allowed value of a list-typed attribute. Label is
// set only where the raw value is a code needing a human-readable name.
type ListValue struct {
	Value string `json:"value"`
	Label string `json:"label,omitempty"`
}

// rawAttribute is the upstream attribute resource shape.
type rawAttribute struct {
	ID            int    `json:"id"`
	Label         string `json:"label"`
	TypeID        int    `json:"typeId"`
	URL           string `json:"url"`
	ListValuesURL string `json:"listValuesUrl,omitempty"`
	KeywordsURL   string `json:"keywordsUrl,omitempty"`
}

// rawListValue is one entry of an attribute's list-values resource.
type rawListValue struct {
	URL   string `json:"url"`
	Value string `json:"value"`
}

// Folder is the upstream folder resource: a tree node with embedded
// children.
type Folder struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Children []Folder `json:"children"`
}

// FlatFolder is one node of the flattened folder forest. Path is the
// slash-joined ancestor chain, computed during traversal.
type FlatFolder struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

// User is an Asset Bank user record.
type User struct {
	ID           int      `json:"id"`
	URL          string   `json:"url,omitempty"`
	Username     string   `json:"username"`
	Forename     string   `json:"forename"`
	Surname      string   `json:"surname"`
	EmailAddress string   `json:"emailAddress"`
	GroupIDs     []string `json:"groupIds,omitempty"`
	IsAdmin      bool     `json:"isAdmin,omitempty"`
}

// PlainText is the payload behind contentUrlUrl and similar redirect
// resources.
type PlainText struct {
	PlainText string `json:"plainText"`
}

// Filter is one search criterion. Field is either a well-known key
// (FilterFolder, FilterAssetType) or a synthesized "attribute_<id>"
// key. Filters are request-scoped and never persisted upstream.
type Filter struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}
