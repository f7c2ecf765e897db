package service

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/assetbridgeapp/assetbridge-server/internal/errors"
)

// MediaService probes remote media resources. Probes go straight to
// the media URL, which already embeds its own access grant, so no DAM
// credentials are attached.
type MediaService struct {
	http   *http.Client
	logger *slog.Logger
}

// NewMediaService creates a media service.
func NewMediaService(logger *slog.Logger) *MediaService {
	return &MediaService{
		http:   &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}
}

// SizeResult reports a probed resource's byte size alongside the
// upstream status, which the handler propagates verbatim.
type SizeResult struct {
	Size   int64 `json:"size"`
	Status int   `json:"-"`
}

// ProbeSize fetches a media URL and reports its size. An unknown
// length reports as zero rather than failing the probe.
func (m *MediaService) ProbeSize(ctx context.Context, mediaURL string) (*SizeResult, error) {
	if mediaURL == "" {
		return nil, errors.Validation("media url is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeValidation, "invalid media url")
	}

	resp, err := m.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUpstream, "media probe failed")
	}
	// Only the length header matters; do not drain the payload.
	defer resp.Body.Close()

	size := resp.ContentLength
	if size < 0 {
		size = 0
	}

	return &SizeResult{Size: size, Status: resp.StatusCode}, nil
}
