// Package store defines the persistence contracts for connector state.
package store

import (
	"context"

	"github.com/assetbridgeapp/assetbridge-server/internal/assetbank"
)

// Settings is the connector's persisted configuration document: the
// transformer endpoint plus the synced catalog snapshots the picker UI
// works from. It is stored and replaced as a single document.
type Settings struct {
	AssetTransformerURL     string                 `json:"assetTransformerUrl" validate:"required,url"`
	AssetTransformerPresets []string               `json:"assetTransformerPresets" validate:"required,min=1,dive,required"`
	Attributes              []assetbank.Attribute  `json:"attributes" validate:"required"`
	Folders                 []assetbank.FlatFolder `json:"folders"`
	ExposedAttributeIDs     []int                  `json:"exposedAttributeIds"`
	RootFolder              *assetbank.FlatFolder  `json:"rootFolder,omitempty"`
}

// SettingsStore persists the settings document. Load returns nil with
// no error when settings have never been saved.
type SettingsStore interface {
	Load(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, settings *Settings) error
}
