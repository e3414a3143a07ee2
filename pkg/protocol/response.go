package protocol

// Event is the lifecycle state of a verification request as reported by
// the service
type Event string

// Events reported in verification responses, status lookups and callbacks
const (
	// EventRequestPending — the request was accepted and awaits end-user input
	EventRequestPending Event = "request.pending"

	// EventRequestReceived — the service received the request data
	EventRequestReceived Event = "request.received"

	// EventRequestInvalid — the request payload was rejected by the service
	EventRequestInvalid Event = "request.invalid"

	// EventRequestTimeout — the end user did not complete the journey in time
	EventRequestTimeout Event = "request.timeout"

	// EventRequestUnauthorized — the supplied credentials were rejected
	EventRequestUnauthorized Event = "request.unauthorized"

	// EventRequestDeleted — the request and its data were deleted
	EventRequestDeleted Event = "request.deleted"

	// EventVerificationAccepted — all enabled checks passed
	EventVerificationAccepted Event = "verification.accepted"

	// EventVerificationDeclined — at least one enabled check failed
	EventVerificationDeclined Event = "verification.declined"

	// EventVerificationCancelled — the end user abandoned the journey
	EventVerificationCancelled Event = "verification.cancelled"

	// EventVerificationStatusChanged — the verification status was updated
	EventVerificationStatusChanged Event = "verification.status.changed"
)

// Accepted reports whether the event is the terminal accepted state
func (e Event) Accepted() bool {
	return e == EventVerificationAccepted
}

// Terminal reports whether the event ends the request lifecycle
func (e Event) Terminal() bool {
	switch e {
	case EventVerificationAccepted, EventVerificationDeclined,
		EventVerificationCancelled, EventRequestTimeout, EventRequestDeleted:
		return true
	}
	return false
}

// APIError is the error object the service embeds in a response body
type APIError struct {
	// Service names the check the error relates to, when applicable
	Service string `json:"service,omitempty"`

	// Key identifies the offending request field, when applicable
	Key string `json:"key,omitempty"`

	// Message is the human-readable description
	Message string `json:"message,omitempty"`
}

// FeedbackResponse is the service's answer to a verification request
type FeedbackResponse struct {
	// Reference echoes the request reference
	Reference string `json:"reference,omitempty"`

	// Event is the current lifecycle state
	Event Event `json:"event,omitempty"`

	// Error carries the service-side error, if any
	Error *APIError `json:"error,omitempty"`

	// Email echoes the end user's email address
	Email string `json:"email,omitempty"`

	// Country echoes the end user's country code
	Country string `json:"country,omitempty"`

	// VerificationURL is the onsite journey URL for the end user
	VerificationURL string `json:"verification_url,omitempty"`

	// DeclinedReason explains a verification.declined event
	DeclinedReason string `json:"declined_reason,omitempty"`

	// VerificationResult holds the per-check accept/decline outcome
	VerificationResult map[string]interface{} `json:"verification_result,omitempty"`

	// VerificationData holds the data extracted during the checks
	VerificationData map[string]interface{} `json:"verification_data,omitempty"`

	// Proofs maps each check to the URL of its captured proof file
	Proofs map[string]interface{} `json:"proofs,omitempty"`
}

// StatusResponse is the service's answer to a status lookup. It carries the
// same fields a verification response does; the shapes are kept separate
// because the service documents them independently.
type StatusResponse struct {
	// Reference echoes the request reference
	Reference string `json:"reference,omitempty"`

	// Event is the current lifecycle state
	Event Event `json:"event,omitempty"`

	// Error carries the service-side error, if any
	Error *APIError `json:"error,omitempty"`

	// DeclinedReason explains a verification.declined event
	DeclinedReason string `json:"declined_reason,omitempty"`

	// VerificationResult holds the per-check accept/decline outcome
	VerificationResult map[string]interface{} `json:"verification_result,omitempty"`

	// VerificationData holds the data extracted during the checks
	VerificationData map[string]interface{} `json:"verification_data,omitempty"`

	// Proofs maps each check to the URL of its captured proof file
	Proofs map[string]interface{} `json:"proofs,omitempty"`
}
