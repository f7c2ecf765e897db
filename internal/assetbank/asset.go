package assetbank

import "context"

// GetAssetDetails fetches a single asset by id. Returns nil for an
// empty id, and nil when the response lacks the `type` discriminator:
// Asset Bank reports missing assets as 200 with an empty body shape.
func (c *Client) GetAssetDetails(ctx context.Context, id string) (*Asset, error) {
	if id == "" {
		return nil, nil
	}

	asset, err := fetchJSON[Asset](ctx, c, "/rest/assets/"+id)
	if err != nil {
		return nil, err
	}

	if asset == nil || asset.Type == "" {
		return nil, nil
	}

	return asset, nil
}
