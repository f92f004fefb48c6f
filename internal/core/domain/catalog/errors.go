package catalog

import "errors"

var (
	// ErrInvalidTTLPolicy is returned when the per-family TTLs break the required ordering.
	ErrInvalidTTLPolicy = errors.New("invalid cache ttl policy")

	// ErrBackendUnavailable is returned when calls to the catalog backend are being short-circuited.
	ErrBackendUnavailable = errors.New("catalog backend unavailable")
)
