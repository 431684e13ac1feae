/**
 * Copyright 2026-present The E-Station Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package apperr

import (
	"errors"
	"fmt"
)

// Error classes surfaced to the presentation layer. Operations wrap one of
// these with context so callers can classify failures with errors.Is.
var (
	ErrValidation  = errors.New("validation failed")
	ErrPermission  = errors.New("permission denied")
	ErrPersistence = errors.New("persistence failure")
)

// Validation returns an ErrValidation carrying a user-readable reason.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Permission returns an ErrPermission carrying a user-readable reason.
func Permission(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrPermission, fmt.Sprintf(format, args...))
}

// Persistence wraps a storage failure as ErrPersistence.
func Persistence(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}

// UserMessage converts an error into the notice shown to the user.
// Validation and permission errors carry their own reason; everything
// else collapses into a generic failure message.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation), errors.Is(err, ErrPermission):
		return err.Error()
	case errors.Is(err, ErrPersistence):
		return "Could not save or load your data. Please try again."
	default:
		return "Something went wrong. Please try again."
	}
}
