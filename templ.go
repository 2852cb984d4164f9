package bem

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Classes is Class split into one entry per class, for templ class
// attributes:
//
//	<div class={ card.MustClasses("title", bem.Single("big")) }>
//
// The slice keeps every class Class would emit, repeats included. templ
// drops repeated names when it renders the attribute, so String can be
// shorter than Class for a modifier list such as Many("a", "a").
func (c *Composer) Classes(element string, mod Modifier) (templ.CSSClasses, error) {
	base, names, err := c.parts(element, mod)
	if err != nil {
		return nil, err
	}

	classes := make([]any, 0, len(names)+1)
	if base != "" {
		classes = append(classes, base)
	}
	for _, name := range names {
		classes = append(classes, base+c.cfg.ModifierSeparator+name)
	}
	return templ.Classes(classes...), nil
}

// MustClasses is like Classes but panics on invalid names.
func (c *Composer) MustClasses(element string, mod Modifier) templ.CSSClasses {
	classes, err := c.Classes(element, mod)
	if err != nil {
		panic(err)
	}
	return classes
}

// Block resolves the Composer for block at render time, through hook
// adapted to the render context, and renders the component returned by
// render. An invalid block name becomes the render error.
//
//	bem.Block(bem.Use, "card", func(b *bem.Composer) templ.Component {
//		return cardView(b, props)
//	})
func Block(hook Hook, block string, render func(*Composer) templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		c, err := hook.InContext(ctx)(block)
		if err != nil {
			return err
		}
		return render(c).Render(ctx, w)
	})
}
