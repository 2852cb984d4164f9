package bem

import (
	"errors"
	"fmt"
)

// Kind identifies which part of a BEM class name is being validated.
type Kind int

// BEM name kinds
const (
	KindBlock Kind = iota
	KindElement
	KindModifier
)

// String returns the lowercase kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindBlock:
		return "block"
	case KindElement:
		return "element"
	case KindModifier:
		return "modifier"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Reason describes why a name was rejected.
type Reason int

const (
	// ReasonWhitespace means the name contains a whitespace character.
	ReasonWhitespace Reason = iota + 1
	// ReasonInvalidChars means the name contains characters outside [a-zA-Z0-9_-].
	ReasonInvalidChars
)

// Sentinel errors usable with errors.Is on any *ValidationError.
var (
	ErrWhitespace   = errors.New("bem: name contains whitespace")
	ErrInvalidChars = errors.New("bem: name contains invalid characters")
)

// ValidationError is returned when a block, element, or modifier name
// breaks the BEM naming rules.
type ValidationError struct {
	Kind   Kind
	Value  string
	Reason Reason
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case ReasonWhitespace:
		msg := fmt.Sprintf("BEM %s name %q should not contain spaces.", e.Kind, e.Value)
		if e.Kind == KindModifier {
			msg += " To add multiple modifiers, pass a slice of names instead."
		}
		return msg
	default:
		return fmt.Sprintf("BEM %s name %q contains invalid characters. Only letters, digits, hyphens, and underscores are allowed.", e.Kind, e.Value)
	}
}

// Unwrap maps the reason onto its sentinel error.
func (e *ValidationError) Unwrap() error {
	if e.Reason == ReasonWhitespace {
		return ErrWhitespace
	}
	return ErrInvalidChars
}
