package protocol

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shuftipro/sdk-go/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test a verification request with a reference passes validation
func TestVerificationRequest_Constraints_Success(t *testing.T) {
	req := &VerificationRequest{
		Reference:        "ref-1",
		VerificationMode: VerificationModeAny,
	}

	assert.NoError(t, validator.Validate(req))
}

// Test a verification request without a reference is rejected by name
func TestVerificationRequest_Constraints_MissingReference(t *testing.T) {
	req := &VerificationRequest{Country: "GB"}

	err := validator.Validate(req)
	require.Error(t, err)

	var valErr *validator.Error
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "reference", valErr.Field)
}

// Test an unknown verification mode is rejected
func TestVerificationRequest_Constraints_BadMode(t *testing.T) {
	req := &VerificationRequest{
		Reference:        "ref-1",
		VerificationMode: "hologram",
	}

	err := validator.Validate(req)
	require.Error(t, err)

	var valErr *validator.Error
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "verification_mode", valErr.Field)
}

// Test nil payloads report a missing payload instead of dereferencing the
// nil receiver when handed to the validator through the interface
func TestPayloadConstraints_NilReceiver(t *testing.T) {
	for _, payload := range []validator.Validatable{
		(*VerificationRequest)(nil),
		(*StatusRequest)(nil),
		(*ProofRequest)(nil),
	} {
		err := validator.Validate(payload)
		require.Error(t, err)

		var valErr *validator.Error
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, "payload", valErr.Field)
		assert.Equal(t, "payload is required", valErr.Message)
	}
}

// Test status and proof payload constraints
func TestLookupPayloads_Constraints(t *testing.T) {
	assert.NoError(t, validator.Validate(&StatusRequest{Reference: "ref-1"}))
	assert.Error(t, validator.Validate(&StatusRequest{}))

	assert.NoError(t, validator.Validate(&ProofRequest{AccessToken: "tok"}))
	assert.Error(t, validator.Validate(&ProofRequest{}))
}

// Test request fields survive the trip through JSON unchanged
func TestVerificationRequest_JSONRoundTrip(t *testing.T) {
	consent := true
	req := &VerificationRequest{
		Reference:        "ref-1",
		Country:          "GB",
		Language:         "EN",
		Email:            "user@example.com",
		CallbackURL:      "https://merchant.example.com/callback",
		VerificationMode: VerificationModeImageOnly,
		ShowConsent:      &consent,
		Document: &DocumentService{
			SupportedTypes: []string{"id_card", "passport"},
			Name:           &Name{FirstName: "Jane", LastName: "Doe"},
			Dob:            "1990-01-31",
		},
		Face: &FaceService{},
	}

	data, err := json.Marshal(req)
	require.NoError(t, err)

	var decoded VerificationRequest
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, req, &decoded)
}

// Test a service response body decodes into the expected shape
func TestFeedbackResponse_Decode(t *testing.T) {
	body := `{
		"reference": "ref-1",
		"event": "verification.declined",
		"declined_reason": "face could not be verified",
		"verification_result": {"document": 1, "face": 0},
		"error": {"service": "face", "key": "proof", "message": "proof missing"}
	}`

	var resp FeedbackResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	assert.Equal(t, "ref-1", resp.Reference)
	assert.Equal(t, EventVerificationDeclined, resp.Event)
	assert.Equal(t, "face could not be verified", resp.DeclinedReason)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "face", resp.Error.Service)
	assert.Equal(t, float64(0), resp.VerificationResult["face"])
}

// Test event classification helpers
func TestEvent_Classification(t *testing.T) {
	assert.True(t, EventVerificationAccepted.Accepted())
	assert.False(t, EventVerificationDeclined.Accepted())

	assert.True(t, EventVerificationAccepted.Terminal())
	assert.True(t, EventRequestTimeout.Terminal())
	assert.False(t, EventRequestPending.Terminal())
	assert.False(t, EventRequestReceived.Terminal())
}

// Test generated references are unique and carry the SDK prefix
func TestNewReference(t *testing.T) {
	a := NewReference()
	b := NewReference()

	assert.True(t, strings.HasPrefix(a, ReferencePrefix))
	assert.NotEqual(t, a, b)
}
