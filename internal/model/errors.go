// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying every failure the engine surfaces. Callers
// match with errors.Is; the HTTP layer maps each class to a status code.
var (
	// ErrNotFound marks a menu, item or linked page that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation marks input the engine refuses to persist.
	ErrValidation = errors.New("validation failed")
	// ErrAuth marks a missing or invalid caller identity.
	ErrAuth = errors.New("unauthorized")
	// ErrTransaction marks a bulk operation that was rolled back.
	ErrTransaction = errors.New("transaction failed")
)

// NotFoundf wraps ErrNotFound with a human-readable message.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrNotFound}, args...)...)
}

// Validationf wraps ErrValidation with a human-readable message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

// Authf wraps ErrAuth with a human-readable message.
func Authf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrAuth}, args...)...)
}

// Transactionf wraps ErrTransaction with a human-readable message.
func Transactionf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrTransaction}, args...)...)
}
