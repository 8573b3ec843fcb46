// Package common defines shared constants and sentinel errors used across
// client and server layers of accountd. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already taken")

	// Service-level errors (generic/internal flow control).
	ErrInternal        = errors.New("internal error")
	ErrUnauthenticated = errors.New("unauthenticated")

	// Validation errors.
	ErrValidation   = errors.New("validation error")
	ErrWeakPassword = errors.New("password too weak")

	// Re-verification errors for destructive/sensitive operations.
	ErrMissingCurrentPassword = errors.New("current password is required")
	ErrIncorrectPassword      = errors.New("current password is incorrect")

	// Token lifecycle errors.
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenSignature = errors.New("token signature mismatch")
	ErrTokenExpired   = errors.New("token expired")
)
