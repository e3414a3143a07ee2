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

package server

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/shuftipro/sdk-go/pkg/verifier"
)

// ErrorHandler handles verification errors
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// CallbackMiddleware verifies the Signature header on incoming status
// callbacks from the verification service.
//
// The service signs callback bodies the same way it signs responses:
// hex(sha256(body + secretKey)). Requests whose digest does not match are
// rejected before the wrapped handler runs.
type CallbackMiddleware struct {
	secretKey    string
	verifier     verifier.ResponseVerifier
	errorHandler ErrorHandler
	optional     bool
}

// NewCallbackMiddleware creates a callback verification middleware for the
// account's secret key
func NewCallbackMiddleware(secretKey string) *CallbackMiddleware {
	return &CallbackMiddleware{
		secretKey:    secretKey,
		verifier:     verifier.NewSHA256Verifier(),
		errorHandler: defaultErrorHandler,
		optional:     false,
	}
}

// SetErrorHandler sets a custom error handler
func (m *CallbackMiddleware) SetErrorHandler(handler ErrorHandler) {
	m.errorHandler = handler
}

// SetOptional sets whether the Signature header is required.
// If true, callbacks without a Signature header are allowed through
// unverified, matching the client-side policy for unsigned responses.
func (m *CallbackMiddleware) SetOptional(optional bool) {
	m.optional = optional
}

// Wrap wraps an HTTP handler with callback signature verification
func (m *CallbackMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		signatures := r.Header.Values("Signature")

		if len(signatures) == 0 {
			if m.optional {
				next.ServeHTTP(w, r)
				return
			}
			m.errorHandler(w, r, fmt.Errorf("missing Signature header"))
			return
		}

		// Read body to preserve it for the handler
		var bodyBytes []byte
		if r.Body != nil {
			bodyBytes, _ = io.ReadAll(r.Body)
			r.Body.Close()
		}
		r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		if err := m.verifier.VerifyResponse(bodyBytes, signatures, m.secretKey); err != nil {
			m.errorHandler(w, r, fmt.Errorf("signature verification failed: %w", err))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// defaultErrorHandler is the default error handler
func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	http.Error(w, fmt.Sprintf("Unauthorized: %s", err.Error()), http.StatusUnauthorized)
}
