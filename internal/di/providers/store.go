package providers

import (
	"os"
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/assetbridgeapp/assetbridge-server/internal/config"
	"github.com/assetbridgeapp/assetbridge-server/internal/logger"
	"github.com/assetbridgeapp/assetbridge-server/internal/store/sqlite"
)

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*sqlite.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the connector state store.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if err := os.MkdirAll(filepath.Dir(cfg.Store.Path), 0o750); err != nil {
		return nil, err
	}

	db, err := sqlite.Open(cfg.Store.Path, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("State store ready", "path", cfg.Store.Path)

	return &StoreHandle{Store: db}, nil
}
