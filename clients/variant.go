package clients

import (
	"fmt"
	"strings"
)

// Variant describes one generation of the shopcart API's endpoint shape.
type Variant struct {
	Name string
	// BasePath is the collection path, e.g. "/api/shopcarts".
	BasePath string
	// ListWrapperKey is the object key wrapping list responses; empty
	// means the server answers with a bare array.
	ListWrapperKey string
	// SearchIDKey is the query parameter that filters by shopcart id.
	SearchIDKey string
}

var (
	VariantAPI = Variant{
		Name:        "api",
		BasePath:    "/api/shopcarts",
		SearchIDKey: "shopcart_id",
	}
	VariantRoot = Variant{
		Name:           "root",
		BasePath:       "/shopcarts",
		ListWrapperKey: "shopcarts",
		SearchIDKey:    "id",
	}
)

// VariantByName looks up a variant case-insensitively; empty means api.
func VariantByName(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", VariantAPI.Name:
		return VariantAPI, nil
	case VariantRoot.Name:
		return VariantRoot, nil
	default:
		return Variant{}, fmt.Errorf("unknown shopcart API variant %q", name)
	}
}
