package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation covers missing or malformed input caught before any storage call.
	ErrValidation = errors.New("validation failed")
	// ErrDuplicate covers uniqueness violations: taken username/email or a repeated
	// (owner, passport number) pair.
	ErrDuplicate = errors.New("already exists")
	// ErrNotFound covers both absent resources and resources owned by someone else,
	// so a caller cannot probe for other users' bookings.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials covers unknown username and wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken covers malformed, tampered and expired bearer tokens.
	ErrInvalidToken = errors.New("invalid token")
)

func NewValidationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func NewDuplicateError(msg string) error {
	return fmt.Errorf("%w: %s", ErrDuplicate, msg)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

func IsInvalidToken(err error) bool {
	return errors.Is(err, ErrInvalidToken)
}
