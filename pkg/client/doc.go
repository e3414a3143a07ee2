// Package client provides the high-level client for the Shufti Pro
// identity-verification service.
//
// The client package wraps the transport pipeline — payload validation,
// Basic authorization, JSON round trip, response-signature verification —
// behind three operations: submitting a verification, looking up its
// status, and downloading proof files.
//
// # Features
//
//   - Basic authentication derived from the account credential pair
//   - Response integrity verification against the Signature header
//   - Payload validation before any network activity
//   - Context-aware, cancellable calls
//   - Per-call credential override for multi-account setups
//   - Custom HTTP client injection
//
// # Basic Usage
//
//	creds := credentials.Credentials{
//	    ClientID:  os.Getenv("SHUFTIPRO_CLIENT_ID"),
//	    SecretKey: os.Getenv("SHUFTIPRO_SECRET_KEY"),
//	}
//	c, err := client.NewClient(creds)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := c.Verify(ctx, &protocol.VerificationRequest{
//	    Reference: protocol.NewReference(),
//	    Document:  &protocol.DocumentService{SupportedTypes: []string{"passport"}},
//	})
//
// # Status Lookup
//
//	status, err := c.GetStatus(ctx, &protocol.StatusRequest{Reference: ref})
//
// # Proof Download
//
//	proof, err := c.GetProof(ctx, proofURL, &protocol.ProofRequest{AccessToken: token})
//	if err != nil {
//	    return err
//	}
//	defer proof.Close()
//	// proof.Content streams the file; proof.ContentType declares its type
//
// # Per-Call Credentials
//
//	resp, err := c.Verify(ctx, req, client.WithCredentials(otherAccount))
//
// Response signatures are still checked with the credentials bound at
// construction in this case; pass WithCallCredentialSignatures to
// NewClient to verify with the per-call pair instead.
//
// # Error Handling
//
// Operations fail with one of four kinds: *validator.Error and
// *credentials.Error before any I/O, and *transport.ClientError for the
// network, serialization and integrity path, which wraps the original
// failure (including *verifier.IntegrityError) as its cause. Context
// cancellation surfaces as the context's own error. Nothing is retried or
// swallowed.
//
// # Thread Safety
//
// A Client is immutable after construction and safe for concurrent use;
// the underlying http.Client manages the only shared resource, its
// connection pool.
package client
