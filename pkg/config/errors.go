package config

import "errors"

var (
	// ErrNilPointer is returned when Load receives a nil target.
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrParse is returned when the environment cannot be parsed into the
	// target struct.
	ErrParse = errors.New("failed to parse environment into config")
)
