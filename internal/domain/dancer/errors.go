package dancer

import "errors"

var (
	ErrNotFound     = errors.New("dancer not found")
	ErrInvalidGenre = errors.New("invalid genre")
)
