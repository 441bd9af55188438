package scrypt

import "errors"

var (
	// ErrInvalidParameter is returned for cost parameters or key lengths outside the supported range
	ErrInvalidParameter = errors.New("scrypt: invalid parameter")
	// ErrResourceExhausted is returned when the work area cannot be allocated
	ErrResourceExhausted = errors.New("scrypt: resource exhausted")
)
