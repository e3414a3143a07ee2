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

package client

import (
	"context"
	"net/http"

	shuftisdk "github.com/shuftipro/sdk-go"
	"github.com/shuftipro/sdk-go/pkg/credentials"
	"github.com/shuftipro/sdk-go/pkg/protocol"
	"github.com/shuftipro/sdk-go/pkg/transport"
)

// DefaultBaseURL is the production endpoint of the verification service
const DefaultBaseURL = shuftisdk.DefaultEndpoint

// Client is the high-level entry point to the verification service. It
// binds an account credential pair at construction and executes every
// operation through one authenticated, integrity-checked round trip.
//
// A Client holds no mutable state across calls and is safe for concurrent
// use.
type Client struct {
	creds     credentials.Credentials
	transport *transport.HTTPTransport
}

// Option configures a Client during construction
type Option func(*config)

type config struct {
	baseURL                   string
	httpClient                *http.Client
	verifyWithCallCredentials bool
}

// WithBaseURL overrides the service endpoint, e.g. for a mock server
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient supplies a custom HTTP client, e.g. with a timeout or a
// tuned connection pool
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *config) {
		c.httpClient = httpClient
	}
}

// WithCallCredentialSignatures verifies response signatures with the
// credentials that authorized each call rather than the pair bound at
// construction. See transport.HTTPTransport.SetVerifyWithCallCredentials.
func WithCallCredentialSignatures() Option {
	return func(c *config) {
		c.verifyWithCallCredentials = true
	}
}

// NewClient creates a client bound to the given account credentials.
// The pair is validated before anything else; an incomplete pair never
// produces a usable client.
func NewClient(creds credentials.Credentials, opts ...Option) (*Client, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	cfg := &config{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(cfg)
	}

	tr := transport.NewHTTPTransport(cfg.baseURL, creds, cfg.httpClient)
	tr.SetVerifyWithCallCredentials(cfg.verifyWithCallCredentials)

	return &Client{
		creds:     creds,
		transport: tr,
	}, nil
}

// CallOption configures a single operation
type CallOption func(*callConfig)

type callConfig struct {
	creds credentials.Credentials
}

// WithCredentials authorizes one call with a different credential pair
// than the one bound at construction
func WithCredentials(creds credentials.Credentials) CallOption {
	return func(c *callConfig) {
		c.creds = creds
	}
}

func (c *Client) callCredentials(opts []CallOption) credentials.Credentials {
	cfg := &callConfig{creds: c.creds}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg.creds
}

// Verify submits a new verification request
func (c *Client) Verify(ctx context.Context, req *protocol.VerificationRequest, opts ...CallOption) (*protocol.FeedbackResponse, error) {
	var resp protocol.FeedbackResponse
	if err := c.transport.Call(ctx, "POST", "/", req, c.callCredentials(opts), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetStatus looks up the current status of an earlier verification request
func (c *Client) GetStatus(ctx context.Context, req *protocol.StatusRequest, opts ...CallOption) (*protocol.StatusResponse, error) {
	var resp protocol.StatusResponse
	if err := c.transport.Call(ctx, "POST", "/status", req, c.callCredentials(opts), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetProof downloads a proof file from its absolute URI using an access
// token. The returned stream must be closed by the caller.
func (c *Client) GetProof(ctx context.Context, uri string, req *protocol.ProofRequest) (*protocol.ProofFileData, error) {
	return c.transport.Proof(ctx, "POST", uri, req)
}
