package signer

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/shuftipro/sdk-go/pkg/credentials"
)

// BasicSigner implements RequestSigner with HTTP Basic authentication.
// The header value is base64(clientID + ":" + secretKey) under the Basic
// scheme, as the verification service expects.
type BasicSigner struct{}

// NewBasicSigner creates a new BasicSigner
func NewBasicSigner() *BasicSigner {
	return &BasicSigner{}
}

// Authorization builds the Basic authorization value for the given
// credential pair. The pair is validated before any encoding happens.
func (s *BasicSigner) Authorization(creds credentials.Credentials) (string, error) {
	if err := creds.Validate(); err != nil {
		return "", err
	}

	token := base64.StdEncoding.EncodeToString([]byte(creds.ClientID + ":" + creds.SecretKey))
	return "Basic " + token, nil
}

// SignRequest sets the Authorization header on an HTTP request
func (s *BasicSigner) SignRequest(ctx context.Context, req *http.Request, creds credentials.Credentials) error {
	// Check context
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if req == nil {
		return fmt.Errorf("request cannot be nil")
	}

	authz, err := s.Authorization(creds)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", authz)
	return nil
}
