package machines

import "errors"

var (
	ErrNotFound     = errors.New("machine not found")
	ErrInvalidInput = errors.New("invalid input")
)
