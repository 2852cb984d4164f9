package bemlint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/bem"
)

func TestDecompose(t *testing.T) {
	cfg := bem.DefaultConfig()

	tests := []struct {
		name      string
		class     string
		want      Parts
		wantKinds []ProblemKind
	}{
		{
			name:  "block",
			class: "card",
			want:  Parts{Block: "card"},
		},
		{
			name:  "element",
			class: "card__title",
			want:  Parts{Block: "card", Element: "title"},
		},
		{
			name:  "block modifier",
			class: "card--dark",
			want:  Parts{Block: "card", Modifier: "dark"},
		},
		{
			name:  "element modifier",
			class: "card__title--big",
			want:  Parts{Block: "card", Element: "title", Modifier: "big"},
		},
		{
			name:  "hyphenated names",
			class: "main-nav__menu-item--is-active",
			want:  Parts{Block: "main-nav", Element: "menu-item", Modifier: "is-active"},
		},
		{
			name:      "nested element",
			class:     "card__body__title",
			want:      Parts{Block: "card", Element: "body__title"},
			wantKinds: []ProblemKind{ProblemNestedElement},
		},
		{
			name:      "empty element",
			class:     "card__",
			want:      Parts{Block: "card"},
			wantKinds: []ProblemKind{ProblemEmptyPart},
		},
		{
			name:      "empty block",
			class:     "--dark",
			want:      Parts{Modifier: "dark"},
			wantKinds: []ProblemKind{ProblemEmptyPart},
		},
		{
			name:      "empty modifier",
			class:     "card--",
			want:      Parts{Block: "card"},
			wantKinds: []ProblemKind{ProblemEmptyPart},
		},
		{
			name:      "invalid characters",
			class:     "card@x",
			want:      Parts{Block: "card@x"},
			wantKinds: []ProblemKind{ProblemInvalidName},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, problems := Decompose(tt.class, cfg)
			assert.Equal(t, tt.want, parts)

			var kinds []ProblemKind
			for _, p := range problems {
				kinds = append(kinds, p.Kind)
			}
			assert.Equal(t, tt.wantKinds, kinds)
		})
	}
}

func TestDecomposeProblemText(t *testing.T) {
	cfg := bem.DefaultConfig()

	_, problems := Decompose("card__body__title", cfg)
	require.Len(t, problems, 1)
	assert.Equal(t, "element of an element; flatten to card__title", problems[0].Text)
	assert.Equal(t, bem.KindElement, problems[0].Part)
	assert.Equal(t, SeverityWarning, problems[0].Severity())

	_, problems = Decompose("card--dark@x", cfg)
	require.Len(t, problems, 1)
	assert.Equal(t, bem.KindModifier, problems[0].Part)
	assert.Equal(t, `BEM modifier name "dark@x" contains invalid characters. Only letters, digits, hyphens, and underscores are allowed.`, problems[0].Text)
	assert.Equal(t, SeverityError, problems[0].Severity())
}

func TestDecomposeCustomSeparators(t *testing.T) {
	cfg := bem.ResolveConfig(bem.WithElementSeparator("-"), bem.WithModifierSeparator("_"))

	parts, problems := Decompose("card-title_big", cfg)
	assert.Empty(t, problems)
	assert.Equal(t, Parts{Block: "card", Element: "title", Modifier: "big"}, parts)
}

func TestBuildInventory(t *testing.T) {
	classes := []*CSSClass{
		{Name: "card", SourceFile: "card.css"},
		{Name: "card__title", SourceFile: "card.css"},
		{Name: "card__title--big", SourceFile: "card.css"},
		{Name: "card--dark", SourceFile: "theme.css"},
		{Name: "menu__item", SourceFile: "menu.css"},
		{Name: "_reset", IsInternal: true, SourceFile: "base.css"},
		{Name: "broken__", SourceFile: "broken.css"},
	}

	inv := BuildInventory(classes, bem.DefaultConfig())

	require.Len(t, inv.Blocks, 2)

	card := inv.Blocks["card"]
	require.NotNil(t, card)
	assert.True(t, card.Defined)
	assert.Equal(t, map[string]bool{"title": true}, card.Elements)
	assert.Equal(t, map[string]bool{"title--big": true, "dark": true}, card.Modifiers)
	assert.Equal(t, []string{"card.css", "theme.css"}, card.Files)

	menu := inv.Blocks["menu"]
	require.NotNil(t, menu)
	assert.False(t, menu.Defined)

	assert.True(t, inv.Classes["_reset"])
	assert.True(t, inv.Classes["broken__"])
	assert.NotContains(t, inv.Blocks, "broken")

	blocks, elements, modifiers := inv.Counts()
	assert.Equal(t, 2, blocks)
	assert.Equal(t, 2, elements)
	assert.Equal(t, 2, modifiers)

	sorted := inv.SortedBlocks()
	require.Len(t, sorted, 2)
	assert.Equal(t, "card", sorted[0].Name)
	assert.Equal(t, "menu", sorted[1].Name)
}
