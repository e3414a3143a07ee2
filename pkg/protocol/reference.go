package protocol

import "github.com/google/uuid"

// ReferencePrefix marks references generated by this SDK
const ReferencePrefix = "SP_REQUEST_"

// NewReference generates a unique request reference. The service requires
// every verification request to carry a reference the account has not used
// before.
func NewReference() string {
	return ReferencePrefix + uuid.NewString()
}
