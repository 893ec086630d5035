package nutrition

import "errors"

// Domain errors for profile validation. Only present-but-invalid values are
// errors; absent values always fall back to defaults.

var (
	ErrInvalidWeight = errors.New("weight must be greater than 0 when provided")
	ErrInvalidHeight = errors.New("height must be greater than 0 when provided")
	ErrInvalidAge    = errors.New("age must be greater than 0 when provided")
)
