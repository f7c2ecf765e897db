package assetbank

import (
	"context"
	"slices"
	"strings"
)

// GetFlatFolders fetches the folder forest and flattens it. The access
// levels endpoint returns one URL per top-level root; each resolves to
// a tree with embedded children, so only the roots need fetching.
//
// Roots are fetched sequentially, not in parallel: later roots may
// repeat folders already visited, and duplicate suppression depends on
// visiting order. The result is sorted by path so folder pickers render
// deterministically.
func (c *Client) GetFlatFolders(ctx context.Context) ([]FlatFolder, error) {
	folderURLs, err := fetchJSON[[]string](ctx, c, "/rest/access-levels")
	if err != nil || folderURLs == nil {
		return nil, err
	}

	var flat []FlatFolder
	seen := make(map[int]bool)

	for _, u := range *folderURLs {
		folder, err := fetchJSON[Folder](ctx, c, u)
		if err != nil {
			return nil, err
		}
		if folder == nil {
			continue
		}
		flat = walkFolder(*folder, "", seen, flat)
	}

	slices.SortFunc(flat, func(a, b FlatFolder) int {
		return strings.Compare(a.Path, b.Path)
	})

	return flat, nil
}

// walkFolder appends the node and its subtree depth-first, computing
// each path as parentPath + "/" + name. A node whose id was already
// visited is pruned along with its subtree: a repeated id means the
// same folder reachable from an earlier root.
func walkFolder(f Folder, parentPath string, seen map[int]bool, acc []FlatFolder) []FlatFolder {
	if seen[f.ID] {
		return acc
	}
	seen[f.ID] = true

	path := f.Name
	if parentPath != "" {
		path = parentPath + "/" + f.Name
	}

	acc = append(acc, FlatFolder{ID: f.ID, Name: f.Name, Path: path})
	for _, child := range f.Children {
		acc = walkFolder(child, path, seen, acc)
	}

	return acc
}
