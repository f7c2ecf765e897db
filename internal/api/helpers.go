package api

import (
	"encoding/json/v2"
	"net/http"
	"strconv"

	domainerrors "github.com/assetbridgeapp/assetbridge-server/internal/errors"
)

// decodeJSON reads and decodes a JSON request body.
func decodeJSON[T any](r *http.Request) (*T, error) {
	var v T
	if err := json.UnmarshalRead(r.Body, &v); err != nil {
		return nil, domainerrors.Validation("invalid JSON body")
	}
	return &v, nil
}

// queryInt parses an integer query parameter, falling back to the
// default when absent or malformed.
func queryInt(r *http.Request, key string, defaultValue int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
