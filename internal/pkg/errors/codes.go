package errors

import "net/http"

var (
	ErrObjectNotFound = New(
		"OBJECT_NOT_FOUND",
		"Construction object not found",
		http.StatusNotFound,
	)

	ErrInvalidEvent = New(
		"INVALID_EVENT",
		"Invalid view event",
		http.StatusBadRequest,
	)

	ErrInvalidZoom = New(
		"INVALID_ZOOM",
		"Invalid zoom level: must be between 0 and 22",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidCatalog = New(
		"INVALID_CATALOG",
		"Construction object catalog is invalid",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
