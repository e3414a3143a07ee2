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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/shuftipro/sdk-go/pkg/credentials"
	"github.com/shuftipro/sdk-go/pkg/protocol"
	"github.com/shuftipro/sdk-go/pkg/signer"
	"github.com/shuftipro/sdk-go/pkg/validator"
	"github.com/shuftipro/sdk-go/pkg/verifier"
)

const contentTypeJSON = "application/json; charset=utf-8"

// HTTPTransport executes authenticated, integrity-checked round trips to
// the verification service.
//
// A transport is stateless apart from its bound base URL, credentials and
// HTTP client handle; it is safe for concurrent use when the underlying
// http.Client is.
type HTTPTransport struct {
	baseURL    string
	creds      credentials.Credentials
	signer     signer.RequestSigner
	verifier   verifier.ResponseVerifier
	httpClient *http.Client

	// verifyWithCallCredentials switches signature verification to the
	// credentials used to authorize the call instead of the instance pair
	verifyWithCallCredentials bool
}

// NewHTTPTransport creates a transport bound to a base URL and the account
// credentials used for response-signature verification.
//
// If httpClient is nil, http.DefaultClient is used.
func NewHTTPTransport(baseURL string, creds credentials.Credentials, httpClient *http.Client) *HTTPTransport {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &HTTPTransport{
		baseURL:    baseURL,
		creds:      creds,
		signer:     signer.NewBasicSigner(),
		verifier:   verifier.NewSHA256Verifier(),
		httpClient: httpClient,
	}
}

// SetVerifyWithCallCredentials controls which secret key checks response
// signatures when a call is authorized with explicitly supplied
// credentials.
//
// The service historically signs responses with the secret of the account
// the client was constructed for, so verification defaults to the instance
// credentials even on per-call-credential requests. Pass true to verify
// with the same credentials that authorized the call instead.
func (t *HTTPTransport) SetVerifyWithCallCredentials(enabled bool) {
	t.verifyWithCallCredentials = enabled
}

// Call executes one authenticated JSON round trip: validate the payload,
// authorize with callCreds, POST to baseURL+path, verify the response
// signature and decode the body into out.
//
// Validation and credential failures are returned unchanged and issue no
// request; any other failure is wrapped as *ClientError with the original
// error as its cause.
func (t *HTTPTransport) Call(ctx context.Context, method, path string, payload validator.Validatable, callCreds credentials.Credentials, out interface{}) error {
	// Validate before any network activity
	if err := validator.Validate(payload); err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return wrap(fmt.Errorf("failed to marshal request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return wrap(fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("Content-Type", contentTypeJSON)

	if err := t.signer.SignRequest(ctx, req, callCreds); err != nil {
		var credErr *credentials.Error
		if errors.As(err, &credErr) {
			return err
		}
		return wrap(err)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return wrap(fmt.Errorf("HTTP request failed: %w", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return wrap(fmt.Errorf("failed to read response body: %w", err))
	}

	// Responses are signed with the instance secret regardless of the
	// credentials that authorized the call, unless the alternate mode was
	// selected.
	secret := t.creds.SecretKey
	if t.verifyWithCallCredentials {
		secret = callCreds.SecretKey
	}

	if err := t.verifier.VerifyResponse(raw, resp.Header.Values("Signature"), secret); err != nil {
		return wrap(err)
	}

	// The service reports request-level failures as events in the JSON
	// body rather than through HTTP status codes, so the body is decoded
	// unconditionally.
	if err := json.Unmarshal(raw, out); err != nil {
		return wrap(fmt.Errorf("failed to unmarshal response: %w", err))
	}

	return nil
}

// Proof executes one unauthenticated binary round trip to an absolute proof
// URI and returns the response body as a stream with its declared content
// type.
//
// No Authorization header is attached and no signature verification is
// performed; proof files are addressed by access token alone. The returned
// stream is the live response body and must be closed by the caller.
func (t *HTTPTransport) Proof(ctx context.Context, method, uri string, token *protocol.ProofRequest) (*protocol.ProofFileData, error) {
	if err := validator.Validate(token); err != nil {
		return nil, err
	}

	body, err := json.Marshal(token)
	if err != nil {
		return nil, wrap(fmt.Errorf("failed to marshal request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, method, uri, bytes.NewReader(body))
	if err != nil {
		return nil, wrap(fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("Content-Type", contentTypeJSON)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, wrap(fmt.Errorf("HTTP request failed: %w", err))
	}

	return &protocol.ProofFileData{
		Content:     resp.Body,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
