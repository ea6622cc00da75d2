package repository

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrFailedToList      = errors.New("failed to list")
	ErrFailedToCount     = errors.New("failed to count")
	ErrCountTimeout      = errors.New("count timed out")
	ErrFailedToInsert    = errors.New("failed to insert")
	ErrFailedToUpdate    = errors.New("failed to update")
	ErrFailedToGet       = errors.New("failed to get")
	ErrFailedToScan      = errors.New("failed to scan")
	ErrCacheUnavailable  = errors.New("cache unavailable")
	ErrInvalidCacheEntry = errors.New("invalid cache entry")
)
