package studio

import "errors"

var (
	ErrNotFound        = errors.New("studio not found")
	ErrInvalidDuration = errors.New("invalid duration format, expected HH:MM:SS")
)
