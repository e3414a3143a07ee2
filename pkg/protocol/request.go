package protocol

import "github.com/shuftipro/sdk-go/pkg/validator"

// Verification modes accepted by the service
const (
	VerificationModeAny       = "any"
	VerificationModeImageOnly = "image_only"
	VerificationModeVideoOnly = "video_only"
)

// VerificationRequest is the payload for a new verification request.
//
// Reference must be unique per request; NewReference generates a suitable
// value. The service blocks (Document, Face, Address) select which checks
// the end user goes through — at least one is normally present, but the
// service accepts a request without any and treats it as a journey with no
// enabled checks, so the client does not enforce it.
type VerificationRequest struct {
	// Reference uniquely identifies this request within the account
	Reference string `json:"reference"`

	// Country is the end user's ISO 3166-1 alpha-2 country code
	Country string `json:"country,omitempty"`

	// Language is the two-letter code of the verification UI language
	Language string `json:"language,omitempty"`

	// Email is the end user's email address
	Email string `json:"email,omitempty"`

	// CallbackURL receives asynchronous status callbacks
	CallbackURL string `json:"callback_url,omitempty"`

	// RedirectURL is where the end user lands after an onsite journey
	RedirectURL string `json:"redirect_url,omitempty"`

	// VerificationMode selects the capture mode: any, image_only or video_only
	VerificationMode string `json:"verification_mode,omitempty"`

	// ShowConsent toggles the consent screen in onsite journeys
	ShowConsent *bool `json:"show_consent,omitempty"`

	// Document configures the identity-document check
	Document *DocumentService `json:"document,omitempty"`

	// Face configures the face check
	Face *FaceService `json:"face,omitempty"`

	// Address configures the address check
	Address *AddressService `json:"address,omitempty"`
}

// DocumentService configures the identity-document verification check
type DocumentService struct {
	// Proof is the base64 or URL proof of the document, empty for onsite capture
	Proof string `json:"proof,omitempty"`

	// AdditionalProof is the back side of the document, when applicable
	AdditionalProof string `json:"additional_proof,omitempty"`

	// SupportedTypes lists acceptable document types such as id_card or passport
	SupportedTypes []string `json:"supported_types,omitempty"`

	// Name is the expected name on the document
	Name *Name `json:"name,omitempty"`

	// Dob is the expected date of birth, formatted yyyy-mm-dd
	Dob string `json:"dob,omitempty"`

	// DocumentNumber is the expected document number
	DocumentNumber string `json:"document_number,omitempty"`

	// ExpiryDate is the expected expiry date, formatted yyyy-mm-dd
	ExpiryDate string `json:"expiry_date,omitempty"`

	// IssueDate is the expected issue date, formatted yyyy-mm-dd
	IssueDate string `json:"issue_date,omitempty"`
}

// FaceService configures the face verification check
type FaceService struct {
	// Proof is the base64 or URL proof of the face, empty for onsite capture
	Proof string `json:"proof,omitempty"`
}

// AddressService configures the address verification check
type AddressService struct {
	// Proof is the base64 or URL proof of the address document
	Proof string `json:"proof,omitempty"`

	// SupportedTypes lists acceptable address-document types
	SupportedTypes []string `json:"supported_types,omitempty"`

	// FullAddress is the expected address on the document
	FullAddress string `json:"full_address,omitempty"`

	// Name is the expected name on the document
	Name *Name `json:"name,omitempty"`
}

// Name is an expected person name used for document and address checks
type Name struct {
	FirstName  string `json:"first_name,omitempty"`
	MiddleName string `json:"middle_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`

	// FullName may be supplied instead of the individual parts
	FullName string `json:"full_name,omitempty"`
}

// Constraints declares the field constraints checked before the request
// is sent. A nil receiver reports itself as a missing payload.
func (r *VerificationRequest) Constraints() []validator.Constraint {
	if r == nil {
		return []validator.Constraint{{Field: "payload", Required: true}}
	}
	return []validator.Constraint{
		{Field: "reference", Value: r.Reference, Required: true},
		{
			Field: "verification_mode",
			Value: r.VerificationMode,
			OneOf: []string{VerificationModeAny, VerificationModeImageOnly, VerificationModeVideoOnly},
		},
	}
}

// StatusRequest is the payload for a status lookup of an earlier request
type StatusRequest struct {
	// Reference identifies the verification request being looked up
	Reference string `json:"reference"`
}

// Constraints declares the field constraints checked before the request
// is sent
func (r *StatusRequest) Constraints() []validator.Constraint {
	if r == nil {
		return []validator.Constraint{{Field: "payload", Required: true}}
	}
	return []validator.Constraint{
		{Field: "reference", Value: r.Reference, Required: true},
	}
}

// ProofRequest is the payload for downloading a proof file
type ProofRequest struct {
	// AccessToken authorizes access to the proof file
	AccessToken string `json:"access_token"`
}

// Constraints declares the field constraints checked before the request
// is sent
func (r *ProofRequest) Constraints() []validator.Constraint {
	if r == nil {
		return []validator.Constraint{{Field: "payload", Required: true}}
	}
	return []validator.Constraint{
		{Field: "access_token", Value: r.AccessToken, Required: true},
	}
}
