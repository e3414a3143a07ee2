// Package verifier checks the integrity of service responses.
//
// The verification service may sign each response by sending a Signature
// header whose value is the hex-encoded SHA-256 digest of the raw response
// body concatenated with the account secret key:
//
//	Signature: hex(sha256(rawBody + secretKey))
//
// SHA256Verifier recomputes that digest and accepts the response only when
// every Signature value matches it. A response without any Signature header
// is accepted without an integrity guarantee; the service omits the header
// for accounts that have response signing disabled.
//
// # Usage
//
//	v := verifier.NewSHA256Verifier()
//	err := v.VerifyResponse(rawBody, resp.Header.Values("Signature"), secretKey)
//	if err != nil {
//	    var integrityErr *verifier.IntegrityError
//	    if errors.As(err, &integrityErr) {
//	        // response was tampered with or signed with a different secret
//	    }
//	}
//
// The same digest protects asynchronous callbacks; see the server package.
package verifier
