package domain

import "errors"

// ErrUniqueViolation is returned by storage when a unique constraint rejects a write.
var ErrUniqueViolation = errors.New("unique constraint violation")
