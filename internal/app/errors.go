package app

import "errors"

// ErrNotFound and related errors describe validation and runtime failures.
var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicateProject = errors.New("project name already exists")
	ErrDefaultProject   = errors.New("default project cannot be removed")
)
