package tag

import "errors"

var (
	ErrNotFound         = errors.New("tag not found")
	ErrDefaultImmutable = errors.New("cannot modify name of default tag")
	ErrDefaultDelete    = errors.New("cannot delete default tag")
	ErrNameTaken        = errors.New("tag with this name already exists")
)
