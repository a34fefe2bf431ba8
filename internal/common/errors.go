// Package common contains sentinel errors and small helpers shared by the
// foodprint server and client components.
package common

import "errors"

var (

	// repository specific errors
	ErrNotFound = errors.New("not found")

	// auth-specific errors
	ErrDuplicateAccount   = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")

	// service specific errors
	ErrValidation = errors.New("validation error")
	ErrInternal   = errors.New("internal error")
)
