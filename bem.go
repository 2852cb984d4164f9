// Package bem composes CSS class names following the BEM
// (Block, Element, Modifier) convention for Go/templ projects.
//
// # Composing
//
// A Composer is bound to one block and validated once:
//
//	card := bem.MustNew("card")
//	card.Must("", nil)                                   // "card"
//	card.Must("title", nil)                              // "card__title"
//	card.Must("title", bem.Single("big"))                // "card__title card__title--big"
//	card.Must("title", bem.Many("big", "red"))           // "card__title card__title--big card__title--red"
//	card.Must("", bem.Flags(bem.When("active", isActive)))
//
// Block, element, and modifier names must match [a-zA-Z0-9_-]+. Invalid
// names produce a *ValidationError; errors.Is works with ErrWhitespace and
// ErrInvalidChars.
//
// # Separators
//
// CreateHook fixes a separator scheme for every composer it builds:
//
//	useBem := bem.CreateHook(bem.WithElementSeparator("-"), bem.WithModifierSeparator("_"))
//
// Use is the hook with the default "__" / "--" separators.
//
// # Memoization
//
// In long-lived interactive renderers a Hook can reuse composers through a
// StableCache (Memo for one call site, Registry for a render scope).
// Adapt only caches when the Environment is Interactive:
//
//	ctx = bem.WithEnvironment(ctx, bem.Interactive)
//	ctx = bem.WithCache(ctx, bem.NewRegistry())
//	c, err := bem.Hook(bem.Use).InContext(ctx)("card")
//
// Block does the same for templ components at render time.
//
// # CLI Tool
//
// The bem CLI composes class names and lints stylesheets and templates for
// BEM naming violations. Install with:
//
//	go install github.com/yacobolo/bem/cmd/bem@latest
package bem
