package content

import "errors"

var (
	ErrNotFound     = errors.New("record not found")
	ErrValidation   = errors.New("validation failed")
	ErrSlugConflict = errors.New("slug already in use")
)
