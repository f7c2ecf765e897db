package normalize

import "github.com/assetbridgeapp/assetbridge-server/internal/assetbank"

// Kind values understood by downstream asset parameters.
const (
	KindImage = "image"
	KindVideo = "video"
	KindAudio = "audio"
	KindOther = "other"
)

// Kind buckets an Asset Bank file format into a generic media kind.
// Design files and documents have no dedicated kind downstream.
func Kind(fileFormat string) string {
	switch fileFormat {
	case assetbank.FileFormatImage:
		return KindImage
	case assetbank.FileFormatVideo:
		return KindVideo
	case assetbank.FileFormatAudio:
		return KindAudio
	default:
		return KindOther
	}
}
