package assetbank

// Well-known filter fields understood by Search.
const (
	FilterFolder          = "folder"
	FilterAssetType       = "assetType"
	FilterAttributePrefix = "attribute_"
)

// Well-known attribute internal names.
const (
	AttrAssetID                     = "assetId"
	AttrTitle                       = "Title"
	AttrAltText                     = "Alt text"
	AttrOriginalFilename            = "originalFilename"
	AttrFileFormat                  = "File Format"
	AttrDescription                 = "Description"
	AttrSize                        = "size"
	AttrOrientation                 = "orientation"
	AttrAddedBy                     = "addedBy"
	AttrLastModifiedBy              = "lastModifiedBy"
	AttrAvailableToAssetTransformer = "Available to Asset Transformer?"
)

// Well-known attribute display labels, where they differ from the
// internal name.
const (
	LabelTitle       = "Title"
	LabelFileFormat  = "File Format"
	LabelOrientation = "Orientation"
)

// File Format attribute values Asset Bank ships with.
const (
	FileFormatImage      = "Image"
	FileFormatVideo      = "Video"
	FileFormatAudio      = "Audio"
	FileFormatDesignFile = "Design File"
	FileFormatDocument   = "Document"
	FileFormatOther      = "Other"
)

// orientationLabels maps the Orientation attribute's raw numeric codes
// to the labels the UI shows.
var orientationLabels = map[string]string{
	"1": "Landscape",
	"2": "Portrait",
	"3": "Square",
}

// OrientationLabel returns the human-readable label for an orientation
// code, or "" when the code is unknown.
func OrientationLabel(code string) string {
	return orientationLabels[code]
}
