package database

import "errors"

// Sentinel errors returned by the store so callers can tell a missing row
// from a transient backend failure, and an ownership refusal from either.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
)
