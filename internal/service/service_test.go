package service

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/assetbridgeapp/assetbridge-server/internal/assetbank"
	"github.com/assetbridgeapp/assetbridge-server/internal/store"
)

// memorySettings is an in-memory SettingsStore for tests.
type memorySettings struct {
	settings *store.Settings
}

func (m *memorySettings) Load(_ context.Context) (*store.Settings, error) {
	return m.settings, nil
}

func (m *memorySettings) Save(_ context.Context, settings *store.Settings) error {
	m.settings = settings
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// newTestClient builds an Asset Bank client against a local test
// server.
func newTestClient(t *testing.T, handler http.Handler) (*assetbank.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := assetbank.New(assetbank.Options{
		APIHost:     server.URL,
		AccessToken: "test-token",
		RateLimit:   1000,
	}, testLogger())
	require.NoError(t, err)

	return client, server
}

// syncedSettings is a settings document as it looks after a metadata
// sync: File Format attribute present with an Image option.
func syncedSettings() *store.Settings {
	return &store.Settings{
		AssetTransformerURL:     "https://transform.example.com",
		AssetTransformerPresets: []string{"web", "print"},
		Attributes: []assetbank.Attribute{
			{ID: 2, Label: "Title", TypeID: 1, ListValues: []assetbank.ListValue{}},
			{ID: 6, Label: "File Format", TypeID: 4, ListValues: []assetbank.ListValue{
				{Value: "Image"},
				{Value: "Document"},
			}},
		},
		Folders: []assetbank.FlatFolder{
			{ID: 2, Name: "Archive", Path: "Archive"},
			{ID: 1, Name: "Brand", Path: "Brand"},
			{ID: 3, Name: "Campaigns", Path: "Brand/Campaigns"},
		},
		ExposedAttributeIDs: []int{2},
	}
}
