package assessment

import "errors"

// Domain-specific errors for the assessment domain
var (
	ErrRecordNotFound  = errors.New("assessment not found")
	ErrMissingFields   = errors.New("missing required assessment fields")
	ErrNoDirectColumns = errors.New("direct assessment sheet has no recognizable PLO columns")
)
