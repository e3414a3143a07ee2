// Package protocol defines the wire types exchanged with the verification
// service.
//
// Request payloads (VerificationRequest, StatusRequest, ProofRequest)
// declare their field constraints through the validator package, so a
// malformed payload is rejected before any network activity. Response
// shapes (FeedbackResponse, StatusResponse) and the Event lifecycle
// constants are passive data: the transport moves them without
// interpreting verification outcomes.
//
// # Building a request
//
//	req := &protocol.VerificationRequest{
//	    Reference:   protocol.NewReference(),
//	    Country:     "GB",
//	    CallbackURL: "https://merchant.example.com/callback",
//	    Document: &protocol.DocumentService{
//	        SupportedTypes: []string{"id_card", "passport"},
//	    },
//	    Face: &protocol.FaceService{},
//	}
//
// # Reading an outcome
//
//	if resp.Event == protocol.EventVerificationAccepted {
//	    // all enabled checks passed
//	}
package protocol
