// Copyright (C) 2025 Shufti Pro
//
// This file is part of sdk-go.
//
// sdk-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sdk-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with sdk-go.  If not, see <https://www.gnu.org/licenses/>.

package transport

import (
	"context"
	"errors"
)

// ClientError wraps any failure on the network, serialization or integrity
// path of a call. The original failure is preserved as the cause, so
// errors.As still reaches an underlying *verifier.IntegrityError or
// transport error.
//
// Validation and credential errors occur before any I/O and are never
// wrapped; context cancellation surfaces as the context's own error.
type ClientError struct {
	// Message is the original failure's message
	Message string

	// Cause is the original failure
	Cause error
}

func (e *ClientError) Error() string {
	return "client error: " + e.Message
}

// Unwrap returns the original failure
func (e *ClientError) Unwrap() error {
	return e.Cause
}

// wrap funnels a call-path failure into a ClientError, letting context
// cancellation pass through untouched.
func wrap(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &ClientError{Message: err.Error(), Cause: err}
}
