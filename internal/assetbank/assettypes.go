package assetbank

import (
	"context"
	"sync"
)

// GetAssetTypes fetches the asset type list. The endpoint returns
// indirection URLs; each resolves to an independent leaf resource, so
// they are fetched concurrently. Entries that resolve to no usable
// payload are dropped.
func (c *Client) GetAssetTypes(ctx context.Context) ([]AssetType, error) {
	typeURLs, err := fetchJSON[[]string](ctx, c, "/rest/asset-types")
	if err != nil || typeURLs == nil {
		return nil, err
	}

	results := make([]*AssetType, len(*typeURLs))
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for i, u := range *typeURLs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assetType, err := fetchJSON[AssetType](ctx, c, u)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			results[i] = assetType
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	assetTypes := make([]AssetType, 0, len(results))
	for _, r := range results {
		if r != nil {
			assetTypes = append(assetTypes, *r)
		}
	}

	return assetTypes, nil
}
