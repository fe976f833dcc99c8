package domain

import (
	"context"
	"time"
)

// FoodRepository defines the interface for the local food catalog.
type FoodRepository interface {
	// Search returns up to limit items whose name or brand contains the
	// raw query, or whose name contains any of the expansion terms,
	// ordered verified-first then by name. Matching is case-insensitive.
	Search(ctx context.Context, rawQuery string, terms []string, limit int) ([]FoodItem, error)

	// FindByBarcode returns the catalog item with the given barcode, or
	// nil when no such item exists.
	FindByBarcode(ctx context.Context, barcode string) (*FoodItem, error)

	// Insert stores a new catalog item, assigning its identifier.
	// Returns ErrDuplicateFood if the barcode is already taken.
	Insert(ctx context.Context, item *FoodItem) error

	// ListDefault returns up to limit items ordered verified-first then
	// by name, for empty-query listings.
	ListDefault(ctx context.Context, limit int) ([]FoodItem, error)
}

// ExternalFoodSource defines the interface for the third-party food
// database reached over the network.
type ExternalFoodSource interface {
	// LookupByBarcode fails with ErrFoodNotFound when the barcode is
	// unknown and ErrSourceUnavailable on transport failure.
	LookupByBarcode(ctx context.Context, barcode string) (*ExternalFoodRecord, error)

	// SearchByText fails with ErrSourceUnavailable on transport failure;
	// an empty list is a valid non-error response.
	SearchByText(ctx context.Context, query string, limit int) ([]ExternalFoodRecord, error)
}

// FoodCache defines the interface for caching barcode lookups.
type FoodCache interface {
	Get(ctx context.Context, key string) (*FoodItem, error)
	Set(ctx context.Context, key string, item *FoodItem, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
