package peo

import "errors"

// Domain-specific errors for the peo domain
var (
	ErrRecordNotFound = errors.New("PEO analysis not found")
)
