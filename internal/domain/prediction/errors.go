package prediction

import "errors"

// Domain-specific errors for the prediction domain
var (
	ErrInvalidInput = errors.New("invalid prediction payload: expected rows of [gender, semester, PLO1..PLO12]")
	ErrModelServer  = errors.New("model server error")
)
