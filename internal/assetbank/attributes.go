package assetbank

import (
	"context"
	"slices"
	"sync"
)

// GetAttributes fetches the full attribute catalog.
//
// This is expensive by design: Asset Bank has no bulk attribute
// endpoint, so every attribute costs one fetch, plus a second fetch for
// its list values where it has any. Resolutions run concurrently; the
// output is sorted by id and the Orientation attribute's numeric codes
// are relabeled so consumers never see raw codes.
func (c *Client) GetAttributes(ctx context.Context) ([]Attribute, error) {
	attributeURLs, err := fetchJSON[[]string](ctx, c, "/rest/attributes")
	if err != nil || attributeURLs == nil {
		return nil, err
	}

	results := make([]*Attribute, len(*attributeURLs))
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for i, u := range *attributeURLs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			attribute, err := c.resolveAttribute(ctx, u)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			results[i] = attribute
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	attributes := make([]Attribute, 0, len(results))
	for _, r := range results {
		if r != nil {
			attributes = append(attributes, *r)
		}
	}

	slices.SortFunc(attributes, func(a, b Attribute) int {
		return a.ID - b.ID
	})

	for i := range attributes {
		relabelOrientation(&attributes[i])
	}

	return attributes, nil
}

// resolveAttribute fetches one attribute resource and, where present,
// its list values.
func (c *Client) resolveAttribute(ctx context.Context, attrURL string) (*Attribute, error) {
	raw, err := fetchJSON[rawAttribute](ctx, c, attrURL)
	if err != nil || raw == nil {
		return nil, err
	}

	attribute := &Attribute{
		ID:         raw.ID,
		Label:      raw.Label,
		TypeID:     raw.TypeID,
		ListValues: []ListValue{},
	}

	if raw.ListValuesURL != "" {
		values, err := fetchJSON[[]rawListValue](ctx, c, raw.ListValuesURL)
		if err != nil {
			return nil, err
		}
		if values != nil {
			for _, v := range *values {
				attribute.ListValues = append(attribute.ListValues, ListValue{Value: v.Value})
			}
		}
	}

	return attribute, nil
}

// relabelOrientation rewrites the Orientation attribute's raw codes
// with their display labels, preserving order.
func relabelOrientation(attribute *Attribute) {
	if attribute.Label != LabelOrientation {
		return
	}
	for i, v := range attribute.ListValues {
		attribute.ListValues[i] = ListValue{
			Value: v.Value,
			Label: OrientationLabel(v.Value),
		}
	}
}
