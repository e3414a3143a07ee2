// Package transport executes round trips against the verification service.
//
// HTTPTransport implements the request/response pipeline behind every
// operation the client package exposes:
//
//  1. validate the outgoing payload against its declared constraints
//  2. serialize the payload to UTF-8 JSON
//  3. sign the request with Basic authorization via the signer
//  4. send it and read the full raw response body
//  5. verify the Signature header against hex(sha256(body + secret))
//  6. decode the body into the caller's response type
//
// Steps 1-3 run before any network activity; validation and credential
// failures surface their own error kinds (*validator.Error,
// *credentials.Error). Failures in the
// remaining steps are wrapped uniformly as *ClientError with the original
// error preserved as the cause:
//
//	err := t.Call(ctx, "POST", "/", req, creds, &resp)
//	var clientErr *transport.ClientError
//	if errors.As(err, &clientErr) {
//	    var integrityErr *verifier.IntegrityError
//	    if errors.As(err, &integrityErr) {
//	        // the response failed its integrity check
//	    }
//	}
//
// Context cancellation is cooperative: it aborts the transport call and
// surfaces the context's own error, never a *ClientError.
//
// Proof downloads go through Proof, which skips authorization and
// signature verification and hands the raw body stream to the caller.
package transport
