package providers

import (
	"github.com/samber/do/v2"

	"github.com/assetbridgeapp/assetbridge-server/internal/assetbank"
	"github.com/assetbridgeapp/assetbridge-server/internal/logger"
	"github.com/assetbridgeapp/assetbridge-server/internal/service"
	"github.com/assetbridgeapp/assetbridge-server/internal/validation"
)

// ProvideValidator provides the request validator.
func ProvideValidator(i do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// ProvideAssetService provides the asset search and detail service.
func ProvideAssetService(i do.Injector) (*service.AssetService, error) {
	client := do.MustInvoke[*assetbank.Client](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewAssetService(client, storeHandle.Store, log.Logger), nil
}

// ProvideCatalogService provides the catalog and settings service.
func ProvideCatalogService(i do.Injector) (*service.CatalogService, error) {
	client := do.MustInvoke[*assetbank.Client](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewCatalogService(client, storeHandle.Store, validator, log.Logger), nil
}

// ProvideMediaService provides the media probe service.
func ProvideMediaService(i do.Injector) (*service.MediaService, error) {
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewMediaService(log.Logger), nil
}
