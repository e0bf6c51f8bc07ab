package core

import "errors"

// Error classes surfaced by the pipeline stages. Stage errors wrap one of
// these so callers can classify a failure with errors.Is.
var (
	ErrNetwork         = errors.New("network error")
	ErrInvalidSelector = errors.New("invalid selector")
	ErrFilesystem      = errors.New("filesystem error")
)
