package errs

import "errors"

// Sentinel errors shared by the use case and handler layers
var (
	// Catalog errors
	ErrHotelNotFound = errors.New("hotel not found")

	// Query errors
	ErrInvalidQuery          = errors.New("invalid query")
	ErrUnknownStrategy       = errors.New("unknown pricing strategy")
	ErrPricingUnavailable    = errors.New("pricing configuration unavailable")
	ErrAvailabilityCorrupted = errors.New("availability data corrupted")

	// Operation errors
	ErrCatalogOperationFailed = errors.New("catalog operation failed")
)
