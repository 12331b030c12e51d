package errors

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrSupplierNotFound  = errors.New("supplier not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidTransition = errors.New("invalid status transition")
)
