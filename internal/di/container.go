// Package di provides dependency injection configuration for the
// AssetBridge server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/assetbridgeapp/assetbridge-server/internal/config"
	"github.com/assetbridgeapp/assetbridge-server/internal/di/providers"
	"github.com/assetbridgeapp/assetbridge-server/internal/logger"
	"github.com/assetbridgeapp/assetbridge-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideSlogLogger)

	// State store
	do.Provide(injector, providers.ProvideStore)

	// Upstream client
	do.Provide(injector, providers.ProvideAssetBankClient)

	// Business services
	do.Provide(injector, providers.ProvideValidator)
	do.Provide(injector, providers.ProvideAssetService)
	do.Provide(injector, providers.ProvideCatalogService)
	do.Provide(injector, providers.ProvideMediaService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns once the server is
// listening. Invocation order matches dependency order so failures
// surface at the component that caused them.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*logger.Logger](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.StoreHandle](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*service.AssetService](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*service.CatalogService](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*service.MediaService](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.HTTPServerHandle](injector); err != nil {
		return err
	}

	return nil
}
