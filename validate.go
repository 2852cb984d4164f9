package bem

import (
	"regexp"
	"strings"
	"unicode"
)

// validNamePattern is the full BEM identifier character set.
var validNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Validate checks a single block, element, or modifier name.
//
// An empty value means "absent" and is always accepted, including for
// blocks: an empty block produces a degenerate class but is not rejected.
// Whitespace is reported before any other character problem.
func Validate(value string, kind Kind) error {
	if value == "" {
		return nil
	}

	if strings.IndexFunc(value, isSpace) >= 0 {
		return &ValidationError{Kind: kind, Value: value, Reason: ReasonWhitespace}
	}

	if !validNamePattern.MatchString(value) {
		return &ValidationError{Kind: kind, Value: value, Reason: ReasonInvalidChars}
	}

	return nil
}

// isSpace is unicode.IsSpace with the byte order mark added and NEL
// (U+0085) removed.
func isSpace(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}

// IsValidName reports whether value is a non-empty BEM identifier.
func IsValidName(value string) bool {
	return validNamePattern.MatchString(value)
}
