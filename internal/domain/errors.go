package domain

import "errors"

// ErrAlreadyExists is returned by repositories when a unique constraint rejects an insert.
var ErrAlreadyExists = errors.New("already exists")
