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

package e2e

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shuftipro/sdk-go/pkg/client"
	"github.com/shuftipro/sdk-go/pkg/credentials"
	"github.com/shuftipro/sdk-go/pkg/protocol"
	"github.com/shuftipro/sdk-go/pkg/server"
	"github.com/shuftipro/sdk-go/pkg/verifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testClientID  = "merchant-1"
	testSecretKey = "very-secret"
)

// mockService imitates the verification service: it checks Basic
// authorization, tracks request state per reference and signs every
// response body with the account secret.
type mockService struct {
	t      *testing.T
	events map[string]protocol.Event
}

func newMockService(t *testing.T) *mockService {
	return &mockService{t: t, events: make(map[string]protocol.Event)}
}

func (s *mockService) respond(w http.ResponseWriter, payload interface{}) {
	body, err := json.Marshal(payload)
	require.NoError(s.t, err)

	w.Header().Set("Signature", verifier.Signature(body, testSecretKey))
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

func (s *mockService) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != testClientID || pass != testSecretKey {
			s.respond(w, &protocol.FeedbackResponse{Event: protocol.EventRequestUnauthorized})
			return
		}

		var req protocol.VerificationRequest
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, &req); err != nil || req.Reference == "" {
			s.respond(w, &protocol.FeedbackResponse{Event: protocol.EventRequestInvalid})
			return
		}

		s.events[req.Reference] = protocol.EventRequestPending
		s.respond(w, &protocol.FeedbackResponse{
			Reference:       req.Reference,
			Event:           protocol.EventRequestPending,
			VerificationURL: "https://app.shuftipro.com/process/" + req.Reference,
		})
	})

	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		var req protocol.StatusRequest
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &req)

		event, found := s.events[req.Reference]
		if !found {
			s.respond(w, &protocol.StatusResponse{Event: protocol.EventRequestInvalid})
			return
		}
		s.respond(w, &protocol.StatusResponse{Reference: req.Reference, Event: event})
	})

	mux.HandleFunc("/proofs/", func(w http.ResponseWriter, r *http.Request) {
		var req protocol.ProofRequest
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &req)

		if req.AccessToken != "proof-token" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.7 proof"))
	})

	return mux
}

// TestE2E_VerificationJourney runs a full journey against the mock
// service: submit, service-side status change, callback delivery, status
// lookup, proof download.
func TestE2E_VerificationJourney(t *testing.T) {
	service := newMockService(t)
	srv := httptest.NewServer(service.handler())
	defer srv.Close()

	creds := credentials.Credentials{ClientID: testClientID, SecretKey: testSecretKey}
	c, err := client.NewClient(creds, client.WithBaseURL(srv.URL))
	require.NoError(t, err)

	ctx := context.Background()
	ref := protocol.NewReference()

	// Submit a verification request
	feedback, err := c.Verify(ctx, &protocol.VerificationRequest{
		Reference: ref,
		Country:   "GB",
		Document: &protocol.DocumentService{
			SupportedTypes: []string{"passport", "id_card"},
		},
		Face: &protocol.FaceService{},
	})
	require.NoError(t, err)
	assert.Equal(t, ref, feedback.Reference)
	assert.Equal(t, protocol.EventRequestPending, feedback.Event)
	assert.NotEmpty(t, feedback.VerificationURL)

	// The end user completes the journey
	service.events[ref] = protocol.EventVerificationAccepted

	// The service delivers a signed callback to the merchant
	var delivered *protocol.StatusResponse
	callbackHandler := server.NewCallbackMiddleware(testSecretKey).Wrap(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := io.ReadAll(r.Body)
			require.NoError(t, err)

			var cb protocol.StatusResponse
			require.NoError(t, json.Unmarshal(raw, &cb))
			delivered = &cb
			w.WriteHeader(http.StatusOK)
		}))

	callbackBody := `{"reference":"` + ref + `","event":"verification.accepted"}`
	cbReq := httptest.NewRequest("POST", "/callback", strings.NewReader(callbackBody))
	cbReq.Header.Set("Signature", verifier.Signature([]byte(callbackBody), testSecretKey))
	cbRec := httptest.NewRecorder()
	callbackHandler.ServeHTTP(cbRec, cbReq)

	require.Equal(t, http.StatusOK, cbRec.Code)
	require.NotNil(t, delivered)
	assert.True(t, delivered.Event.Accepted())

	// Confirm via status lookup
	status, err := c.GetStatus(ctx, &protocol.StatusRequest{Reference: ref})
	require.NoError(t, err)
	assert.Equal(t, protocol.EventVerificationAccepted, status.Event)
	assert.True(t, status.Event.Terminal())

	// Download the proof file
	proof, err := c.GetProof(ctx, srv.URL+"/proofs/"+ref, &protocol.ProofRequest{AccessToken: "proof-token"})
	require.NoError(t, err)
	defer proof.Close()

	assert.Equal(t, "application/pdf", proof.ContentType)
	content, err := io.ReadAll(proof.Content)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7 proof", string(content))
}

// TestE2E_RejectedCredentials confirms the service-side unauthorized event
// decodes as a normal response
func TestE2E_RejectedCredentials(t *testing.T) {
	service := newMockService(t)
	srv := httptest.NewServer(service.handler())
	defer srv.Close()

	creds := credentials.Credentials{ClientID: testClientID, SecretKey: testSecretKey}
	c, err := client.NewClient(creds, client.WithBaseURL(srv.URL))
	require.NoError(t, err)

	wrong := credentials.Credentials{ClientID: "intruder", SecretKey: testSecretKey}
	feedback, err := c.Verify(context.Background(),
		&protocol.VerificationRequest{Reference: protocol.NewReference()},
		client.WithCredentials(wrong))
	require.NoError(t, err)

	assert.Equal(t, protocol.EventRequestUnauthorized, feedback.Event)
}
