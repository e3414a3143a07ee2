// Package server verifies asynchronous callbacks from the verification
// service.
//
// When a verification request carries a callback URL, the service POSTs
// status updates to it and signs each body with the account secret, using
// the same digest the client checks on responses. CallbackMiddleware
// rejects callbacks that fail that check:
//
//	m := server.NewCallbackMiddleware(secretKey)
//	http.Handle("/shuftipro/callback", m.Wrap(http.HandlerFunc(handleCallback)))
//
// The body is read for verification and restored, so the wrapped handler
// can decode it normally, e.g. into a protocol.StatusResponse.
package server
