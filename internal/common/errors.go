// Package common defines shared constants and sentinel errors used across
// client and server layers of clipsync. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Authentication errors.
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Authorization errors (cross-user access).
	ErrForbidden = errors.New("forbidden")

	// Entity-specific not-found errors.
	ErrUserNotFound      = errors.New("user not found")
	ErrDeviceNotFound    = errors.New("device not found")
	ErrClipboardNotFound = errors.New("clipboard entry not found")

	// Validation errors.
	ErrContentTooLarge  = errors.New("content exceeds maximum size")
	ErrPasswordTooShort = errors.New("password is too short")
	ErrUsernameTaken    = errors.New("username already taken")

	// Infrastructure errors.
	ErrBroadcast = errors.New("broadcast error")
)
