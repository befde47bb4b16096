package domain

import "errors"

var (
	ErrInvalidID          = errors.New("invalid id")
	ErrInvalidName        = errors.New("invalid name")
	ErrInvalidTitle       = errors.New("invalid title")
	ErrTitleTooLong       = errors.New("title too long")
	ErrDescriptionTooLong = errors.New("description too long")
	ErrInvalidPriority    = errors.New("invalid priority")
	ErrInvalidDueDate     = errors.New("invalid due date")
)
