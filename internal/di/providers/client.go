package providers

import (
	"github.com/samber/do/v2"

	"github.com/assetbridgeapp/assetbridge-server/internal/assetbank"
	"github.com/assetbridgeapp/assetbridge-server/internal/config"
	"github.com/assetbridgeapp/assetbridge-server/internal/logger"
)

// ProvideAssetBankClient provides the rate-limited Asset Bank client.
func ProvideAssetBankClient(i do.Injector) (*assetbank.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client, err := assetbank.New(assetbank.Options{
		APIHost:     cfg.AssetBank.APIHost,
		AccessToken: cfg.AssetBank.AccessToken,
		RateLimit:   cfg.AssetBank.RateLimit,
	}, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Asset Bank client ready",
		"api_host", cfg.AssetBank.APIHost,
		"rate_limit", cfg.AssetBank.RateLimit,
	)

	return client, nil
}
