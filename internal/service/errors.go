package service

import "errors"

// Error kinds returned by the services. Handlers map them onto status codes
// with errors.Is; the wrapped message says what went wrong.
var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrPersistence = errors.New("persistence failed")
	ErrRender      = errors.New("render failed")
)
