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

package verifier

// ResponseVerifier checks the integrity of a raw response body against the
// Signature header values the service attached to it
type ResponseVerifier interface {
	// VerifyResponse verifies a raw response body against zero or more
	// Signature header values using the account secret key
	VerifyResponse(rawBody []byte, signatures []string, secretKey string) error
}

// IntegrityError is returned when the computed response digest does not
// match a provided Signature header value
type IntegrityError struct {
	Message string
}

func (e *IntegrityError) Error() string {
	return "integrity check failed: " + e.Message
}
