package auth

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidToken and ErrInvalidCredentials refine ErrUnauthorized.
	ErrInvalidToken       = fmt.Errorf("%w: invalid token", ErrUnauthorized)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
)
