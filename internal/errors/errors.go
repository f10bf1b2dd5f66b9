package errors

import (
	"errors"
	"fmt"
)

// Common error types for the authentication gateway
var (
	// OAuth exchange errors
	ErrNoCode       = errors.New("missing authorization code")
	ErrExchange     = errors.New("authorization code exchange failed")
	ErrIdentity     = errors.New("identity fetch failed")
	ErrInvalidState = errors.New("invalid state token")

	// Roster errors
	ErrRosterUnavailable = errors.New("roster unavailable")
	ErrHeaderNotFound    = errors.New("roster header not found")
	ErrRecordNotFound    = errors.New("roster record not found")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
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
