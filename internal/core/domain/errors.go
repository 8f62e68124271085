package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Their messages cross the action boundary verbatim inside
// the response envelope, so the wording is part of the API surface.
var (
	ErrUserNotFound    = errors.New("User not found")
	ErrUserExists      = errors.New("User already exists")
	ErrCustomerExists  = errors.New("Customer already exists")
	ErrInvalidPassword = errors.New("Invalid password")
	ErrInvalidPasscode = errors.New("Invalid passcode")
	ErrNotAuthorized   = errors.New("Not authorized")
	ErrHostNotFound    = errors.New("Host not found")
	ErrTooManyAttempts = errors.New("Too many login attempts")
	ErrMissingDBCred   = errors.New("MongoDB credentials not found")
)

// ValidationError carries one message per offending field.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Fields, "; ")
}

// NotFoundError identifies an entity lookup miss for an arbitrary entity kind.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}
