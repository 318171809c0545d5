package finalresult

import "errors"

// Domain-specific errors for the finalresult domain
var (
	ErrSessionNotFound  = errors.New("staging session not found or expired")
	ErrIncompleteUpload = errors.New("both files must be staged before calculation")
	ErrRecordNotFound   = errors.New("final result record not found")
)
