package signer

import (
	"context"
	"net/http"

	"github.com/shuftipro/sdk-go/pkg/credentials"
)

// RequestSigner attaches account authorization to outgoing HTTP requests
type RequestSigner interface {
	// SignRequest authorizes an HTTP request with the given credential pair
	SignRequest(ctx context.Context, req *http.Request, creds credentials.Credentials) error

	// Authorization returns the Authorization header value derived from the
	// given credential pair
	Authorization(creds credentials.Credentials) (string, error)
}
