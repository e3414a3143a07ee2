// Package signer builds account authorization for outgoing requests.
//
// The verification service authenticates merchants with HTTP Basic
// authentication over the account's client ID and secret key:
//
//	Authorization: Basic base64(clientID + ":" + secretKey)
//
// BasicSigner validates the credential pair before encoding it, so an
// incomplete pair is rejected before any request leaves the process:
//
//	s := signer.NewBasicSigner()
//	authz, err := s.Authorization(credentials.Credentials{
//	    ClientID:  "abc",
//	    SecretKey: "xyz",
//	})
//	// authz == "Basic YWJjOnh5eg=="
//
// Proof downloads are the one unauthenticated operation and bypass this
// package entirely; see the transport package.
package signer
