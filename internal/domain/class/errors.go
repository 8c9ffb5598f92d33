package class

import "errors"

var (
	ErrNotFound        = errors.New("class not found")
	ErrUnknownStudio   = errors.New("studio not found")
	ErrUnknownDancers  = errors.New("one or more dancer IDs not found")
	ErrInvalidLevel    = errors.New("invalid level, must be BASIC or ADVANCED")
	ErrInvalidDatetime = errors.New("invalid datetime, expected ISO-8601")
	ErrInvalidTimezone = errors.New("invalid IANA timezone")
)
