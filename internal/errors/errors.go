package errors

import (
	"errors"
	"fmt"
)

// Common error types for the clinic client
var (
	// Session errors
	ErrNoRefreshToken = errors.New("no refresh token held")
	ErrSessionExpired = errors.New("session expired")
	ErrNoSession      = errors.New("no session")

	// Token errors
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Transport errors
	ErrEnvelope         = errors.New("unexpected response envelope")
	ErrResponseTooLarge = errors.New("response body exceeds limit")

	// Input errors
	ErrInvalidRequest = errors.New("invalid request")

	// General errors
	ErrInternal    = errors.New("internal error")
	ErrUnsupported = errors.New("unsupported operation")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
