package bem

import "strings"

// Composer builds class names for one block. It is immutable once created
// and safe for concurrent use.
type Composer struct {
	block string
	cfg   Config
}

// New validates block and returns a Composer for it. The block name is
// checked once here; an empty block is accepted.
func New(block string, opts ...Option) (*Composer, error) {
	return newComposer(block, ResolveConfig(opts...))
}

// MustNew is like New but panics if block is invalid. It simplifies
// package-level composers and templ components.
func MustNew(block string, opts ...Option) *Composer {
	c, err := New(block, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func newComposer(block string, cfg Config) (*Composer, error) {
	if err := Validate(block, KindBlock); err != nil {
		return nil, err
	}
	return &Composer{block: block, cfg: cfg}, nil
}

// Block returns the block name.
func (c *Composer) Block() string {
	return c.block
}

// Config returns the separators this composer was built with.
func (c *Composer) Config() Config {
	return c.cfg
}

// Class composes the class attribute value for element and mod.
//
// An empty element addresses the block itself and a nil mod adds no
// modifiers:
//
//	c := bem.MustNew("card")
//	c.Class("", nil)                         // "card"
//	c.Class("title", nil)                    // "card__title"
//	c.Class("title", bem.Many("big", "red")) // "card__title card__title--big card__title--red"
//
// Any invalid name aborts the call with a *ValidationError and no output.
func (c *Composer) Class(element string, mod Modifier) (string, error) {
	base, names, err := c.parts(element, mod)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return base, nil
	}

	var b strings.Builder
	b.WriteString(base)
	for _, name := range names {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(base)
		b.WriteString(c.cfg.ModifierSeparator)
		b.WriteString(name)
	}
	return b.String(), nil
}

// Must is like Class but panics on invalid names. Use it in templ
// expressions where a bad name is a programming error.
func (c *Composer) Must(element string, mod Modifier) string {
	s, err := c.Class(element, mod)
	if err != nil {
		panic(err)
	}
	return s
}

// parts validates the input and returns the base class and the modifier
// names to append to it.
func (c *Composer) parts(element string, mod Modifier) (string, []string, error) {
	if err := Validate(element, KindElement); err != nil {
		return "", nil, err
	}

	base := c.block
	if element != "" {
		base = c.block + c.cfg.ElementSeparator + element
	}

	if mod == nil || mod.absent() {
		return base, nil, nil
	}

	names, err := mod.resolve()
	if err != nil {
		return "", nil, err
	}
	return base, names, nil
}
