package models

import "errors"

// Domain error taxonomy. Repos and services wrap these with fmt.Errorf("%w")
// so callers can classify failures with errors.Is.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrReference         = errors.New("referenced record does not exist")
	ErrDuplicateIdentity = errors.New("identity already registered")
	ErrDuplicateLink     = errors.New("link already exists")
	ErrSlotConflict      = errors.New("time slot overlaps an existing booking")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrInvalidTransition = errors.New("invalid status transition")
)
