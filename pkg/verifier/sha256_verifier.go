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

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// SHA256Verifier implements ResponseVerifier with the service's signing
// scheme: the Signature header carries hex(sha256(body + secretKey)).
//
// The digest is content-addressed rather than a keyed MAC, so it detects a
// body/secret mismatch but not forgery by a party that knows the secret.
type SHA256Verifier struct{}

// NewSHA256Verifier creates a new SHA256Verifier
func NewSHA256Verifier() *SHA256Verifier {
	return &SHA256Verifier{}
}

// VerifyResponse recomputes the body digest and compares it against every
// provided Signature value.
//
// When no Signature values are present the response is accepted as-is: the
// service omits the header for unsigned accounts, and absence is treated as
// "not applicable" rather than as tampering.
func (v *SHA256Verifier) VerifyResponse(rawBody []byte, signatures []string, secretKey string) error {
	if len(signatures) == 0 {
		return nil
	}

	digest := Signature(rawBody, secretKey)
	for _, sig := range signatures {
		if subtle.ConstantTimeCompare([]byte(sig), []byte(digest)) != 1 {
			return &IntegrityError{Message: "invalid response signature"}
		}
	}
	return nil
}

// Signature computes the hex-encoded SHA-256 digest of a body concatenated
// with the secret key. Exposed for callback handlers that need to produce
// or check the same value.
func Signature(body []byte, secretKey string) string {
	sum := sha256.Sum256([]byte(string(body) + secretKey))
	return hex.EncodeToString(sum[:])
}
