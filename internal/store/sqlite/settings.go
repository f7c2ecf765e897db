package sqlite

import (
	"context"
	"database/sql"
	"encoding/json/v2"
	"time"

	"github.com/assetbridgeapp/assetbridge-server/internal/store"
)

const settingsKey = "integration"

// Load retrieves the settings document. Returns nil with no error
// when settings have never been saved.
func (s *Store) Load(ctx context.Context) (*store.Settings, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM integration_settings WHERE key = ?`, settingsKey).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var settings store.Settings
	if err := json.Unmarshal([]byte(value), &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Save persists the settings document, replacing any existing one.
func (s *Store) Save(ctx context.Context, settings *store.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO integration_settings (key, value, updated_at) VALUES (?, ?, ?)`,
		settingsKey,
		string(data),
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}
