package domain

import "errors"

var (
	// ErrFoodNotFound is returned when an item or barcode is absent from
	// both the local catalog and the external food database
	ErrFoodNotFound = errors.New("food not found")

	// ErrSourceUnavailable is returned when the external food database
	// cannot be reached or answers with an error status
	ErrSourceUnavailable = errors.New("external food source unavailable")

	// ErrDuplicateFood is returned when an insert collides with an
	// existing catalog entry carrying the same barcode
	ErrDuplicateFood = errors.New("food with this barcode already exists")

	// ErrCatalogUnavailable is returned when the local catalog store fails
	ErrCatalogUnavailable = errors.New("food catalog unavailable")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
