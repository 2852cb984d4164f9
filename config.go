package bem

import (
	"fmt"
	"strings"
	"unicode"
)

// Default BEM separators
const (
	DefaultElementSeparator  = "__"
	DefaultModifierSeparator = "--"
)

// Config holds the separator scheme used to compose class names.
type Config struct {
	ElementSeparator  string // "__" in block__element
	ModifierSeparator string // "--" in block--modifier
}

// DefaultConfig returns the classic "__" / "--" separator scheme.
func DefaultConfig() Config {
	return Config{
		ElementSeparator:  DefaultElementSeparator,
		ModifierSeparator: DefaultModifierSeparator,
	}
}

// Option overrides part of the default Config.
type Option func(*Config)

// WithElementSeparator sets the string placed between block and element.
func WithElementSeparator(sep string) Option {
	return func(c *Config) {
		c.ElementSeparator = sep
	}
}

// WithModifierSeparator sets the string placed between base class and modifier.
func WithModifierSeparator(sep string) Option {
	return func(c *Config) {
		c.ModifierSeparator = sep
	}
}

// WithConfig replaces both separators at once.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

// ResolveConfig applies opts over DefaultConfig. Separators are taken
// verbatim; see Check for an opt-in sanity check.
func ResolveConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Check reports separators that would produce malformed class names:
// empty separators and separators containing whitespace or '.'.
// Composition never calls Check.
func (c Config) Check() error {
	for _, sep := range []struct {
		name  string
		value string
	}{
		{"element separator", c.ElementSeparator},
		{"modifier separator", c.ModifierSeparator},
	} {
		if sep.value == "" {
			return fmt.Errorf("%s is empty", sep.name)
		}
		if strings.IndexFunc(sep.value, unicode.IsSpace) >= 0 {
			return fmt.Errorf("%s %q contains whitespace", sep.name, sep.value)
		}
		if strings.Contains(sep.value, ".") {
			return fmt.Errorf("%s %q contains '.'", sep.name, sep.value)
		}
	}
	if c.ElementSeparator == c.ModifierSeparator {
		return fmt.Errorf("element and modifier separators are both %q", c.ElementSeparator)
	}
	return nil
}
