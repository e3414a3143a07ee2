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

// Package credentials defines the account credential pair used for request
// authorization and response signing.
package credentials

import "strings"

// Credentials is the client ID / secret key pair issued for a Shufti Pro
// account. The same pair authorizes outgoing requests and signs the
// responses the service returns.
//
// Credentials are immutable once constructed; they are bound to a client
// instance for its lifetime or passed explicitly per call.
type Credentials struct {
	// ClientID is the account's client identifier
	ClientID string

	// SecretKey is the account's secret key
	SecretKey string
}

// Validate checks that both fields of the credential pair are present.
// Whitespace-only values are treated as absent.
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.ClientID) == "" {
		return &Error{Message: "client ID is required"}
	}
	if strings.TrimSpace(c.SecretKey) == "" {
		return &Error{Message: "secret key is required"}
	}
	return nil
}

// Error is returned when a credential pair is missing or incomplete
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return "invalid credentials: " + e.Message
}
