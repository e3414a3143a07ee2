package validator

import "strings"

// Constraint describes one declared check on a payload field. Payload types
// list their constraints explicitly instead of relying on struct-tag
// reflection, so the set of checks a payload carries is visible at the
// type definition.
type Constraint struct {
	// Field is the wire name of the field being checked
	Field string

	// Value is the field's current value
	Value string

	// Required rejects empty or whitespace-only values
	Required bool

	// OneOf restricts non-empty values to the listed set
	OneOf []string
}

// Validatable is implemented by payload types that declare field constraints
type Validatable interface {
	// Constraints returns the declared constraints in field order
	Constraints() []Constraint
}

// Validate checks a payload against its declared constraints and reports
// the first violation only; remaining constraints are not evaluated.
// A nil interface is rejected outright; a typed nil payload reports the
// same violation through its own Constraints.
func Validate(v Validatable) error {
	if v == nil {
		return &Error{Message: "payload is required"}
	}

	for _, c := range v.Constraints() {
		if c.Required && strings.TrimSpace(c.Value) == "" {
			return &Error{Field: c.Field, Message: c.Field + " is required"}
		}
		if c.Value != "" && len(c.OneOf) > 0 && !contains(c.OneOf, c.Value) {
			return &Error{
				Field:   c.Field,
				Message: c.Field + " must be one of: " + strings.Join(c.OneOf, ", "),
			}
		}
	}
	return nil
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

// Error is returned when a payload violates a declared constraint
type Error struct {
	// Field is the wire name of the violating field
	Field string

	// Message describes the first violation found
	Message string
}

func (e *Error) Error() string {
	return "invalid request: " + e.Message
}
