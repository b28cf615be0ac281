package types

import "errors"

// Store lifecycle errors.
var (
	ErrStoreClosed = errors.New("store is closed")
)

// Validation errors. These are rejected before any storage access.
var (
	ErrInvalidFilename = errors.New("filename must not be empty")
	ErrInvalidSize     = errors.New("file size must not be negative")
	ErrInvalidUser     = errors.New("user id must be positive")
	ErrInvalidUsername = errors.New("username must not be empty")
	ErrInvalidPassword = errors.New("password must not be empty")
	ErrEmptyTable      = errors.New("table has no rows")
	ErrRaggedTable     = errors.New("table rows must match the column count")
	ErrEmptyQuery      = errors.New("search query must not be empty")
	ErrUnknownFormat   = errors.New("unknown export format")
)

// Parse and user errors.
var (
	ErrMalformedCSV = errors.New("malformed CSV payload")
	ErrUserExists   = errors.New("username already exists")
	ErrUnknownUser  = errors.New("unknown username")
)
