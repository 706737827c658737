package status

import "errors"

var (
	ErrNotFound         = errors.New("status not found")
	ErrAccessDenied     = errors.New("access denied")
	ErrDefaultImmutable = errors.New("cannot modify name of default status")
	ErrDefaultDelete    = errors.New("cannot delete default status")
	ErrNameTaken        = errors.New("status with this name already exists")
	ErrNoFallbackStatus = errors.New("fallback status not found")
)
