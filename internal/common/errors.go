// Package common defines shared sentinel errors and small crypto/rand helpers
// used across the service layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Store-level errors.
	ErrCorruptStore       = errors.New("corrupt user store")
	ErrStorageUnavailable = errors.New("storage unavailable")

	// Business-rule errors (expected outcomes, matched explicitly by callers).
	ErrorNotFound         = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Generic/internal flow control.
	ErrorInternal = errors.New("internal error")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
