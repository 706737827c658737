package task

import "errors"

var (
	ErrNotFound       = errors.New("task not found")
	ErrAccessDenied   = errors.New("access denied")
	ErrStatusNotFound = errors.New("status not found")
	ErrTagsNotFound   = errors.New("one or more tags not found")
)
