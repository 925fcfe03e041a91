package service

import "errors"

// Sentinel errors shared by the services. Handlers translate these onto HTTP
// status codes; anything else is a store error and surfaces as a generic 500.
var (
	ErrIDRequired         = errors.New("id is required")
	ErrNotFound           = errors.New("record not found")
	ErrInvalidPayload     = errors.New("invalid payload")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
