package interfaces

import "errors"

// Storage conditions surfaced by repositories. Use cases translate them into
// domain errors.
var (
	ErrAlreadyExists = errors.New("item already exists")
	ErrImmutable     = errors.New("item can no longer be modified")
)
