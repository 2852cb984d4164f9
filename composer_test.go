package bem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposerClass(t *testing.T) {
	tests := []struct {
		name    string
		element string
		mod     Modifier
		want    string
	}{
		{name: "block only", want: "block"},
		{name: "element", element: "el", want: "block__el"},
		{name: "single modifier on block", mod: Single("big"), want: "block block--big"},
		{name: "empty single is absent", element: "el", mod: Single(""), want: "block__el"},
		{name: "single modifier on element", element: "el", mod: Single("m"), want: "block__el block__el--m"},
		{
			name:    "many keeps order",
			element: "el",
			mod:     Many("a", "b"),
			want:    "block__el block__el--a block__el--b",
		},
		{name: "many with no names", element: "el", mod: Many(), want: "block__el"},
		{name: "empty slice", element: "el", mod: Many([]string{}...), want: "block__el"},
		{
			name:    "flags skip false entries",
			element: "el",
			mod:     Flags(When("a", true), When("b", false), When("c", true)),
			want:    "block__el block__el--a block__el--c",
		},
		{
			name:    "false flags are not validated",
			element: "el",
			mod:     Flags(When("a", true), When("not valid!", false)),
			want:    "block__el block__el--a",
		},
		{name: "all flags off", element: "el", mod: Flags(When("a", false)), want: "block__el"},
		{
			name:    "flag map in key order",
			element: "el",
			mod:     FlagMap(map[string]bool{"c": true, "a": true, "b": false}),
			want:    "block__el block__el--a block__el--c",
		},
		{name: "nil flag map", mod: FlagMap(nil), want: "block"},
	}

	c, err := New("block")
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Class(tt.element, tt.mod)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComposerClass_ValidIdentifiers(t *testing.T) {
	names := []string{"b", "card", "h1", "a_b", "x-y", "Z9", "-", "_"}

	for _, b := range names {
		for _, e := range names {
			for _, m := range names {
				c, err := New(b)
				require.NoError(t, err)

				got, err := c.Class(e, Single(m))
				require.NoError(t, err)
				assert.Equal(t, b+"__"+e+" "+b+"__"+e+"--"+m, got)
			}
		}
	}
}

func TestComposerClass_Errors(t *testing.T) {
	c := MustNew("block")

	tests := []struct {
		name    string
		element string
		mod     Modifier
		wantErr error
		kind    Kind
	}{
		{name: "element with space", element: "my el", wantErr: ErrWhitespace, kind: KindElement},
		{name: "element with symbol", element: "el$", wantErr: ErrInvalidChars, kind: KindElement},
		{name: "single modifier", mod: Single("bad mod!"), wantErr: ErrWhitespace, kind: KindModifier},
		{name: "modifier characters", mod: Single("bad!"), wantErr: ErrInvalidChars, kind: KindModifier},
		{name: "second of many", mod: Many("ok", "no way"), wantErr: ErrWhitespace, kind: KindModifier},
		{name: "true flag", mod: Flags(When("ok", true), When("x.y", true)), wantErr: ErrInvalidChars, kind: KindModifier},
		{name: "element checked before modifier", element: "e e", mod: Single("m!"), wantErr: ErrWhitespace, kind: KindElement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Class(tt.element, tt.mod)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.ErrorIs(t, err, tt.wantErr)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.kind, verr.Kind)
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("invalid block fails before composing", func(t *testing.T) {
		c, err := New("my block")
		require.Error(t, err)
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrWhitespace)
		assert.Contains(t, err.Error(), "should not contain spaces")
	})

	t.Run("empty block is accepted", func(t *testing.T) {
		c, err := New("")
		require.NoError(t, err)

		got, err := c.Class("", nil)
		require.NoError(t, err)
		assert.Equal(t, "", got)

		got, err = c.Class("el", Single("m"))
		require.NoError(t, err)
		assert.Equal(t, "__el __el--m", got)

		// No base class: only the modifier classes remain.
		got, err = c.Class("", Many("m", "n"))
		require.NoError(t, err)
		assert.Equal(t, "--m --n", got)

		classes := c.MustClasses("", Single("m"))
		assert.Equal(t, []any{"--m"}, []any(classes))
	})

	t.Run("custom separators", func(t *testing.T) {
		c, err := New("b", WithElementSeparator("-"), WithModifierSeparator("_"))
		require.NoError(t, err)
		assert.Equal(t, "b-e b-e_m", c.Must("e", Single("m")))
		assert.Equal(t, Config{ElementSeparator: "-", ModifierSeparator: "_"}, c.Config())
		assert.Equal(t, "b", c.Block())
	})
}

func TestMust(t *testing.T) {
	assert.Panics(t, func() { MustNew("a b") })
	assert.Panics(t, func() { MustNew("a").Must("", Single("bad mod!")) })
	assert.NotPanics(t, func() { MustNew("a").Must("b", nil) })
}

func TestComposerClass_Idempotent(t *testing.T) {
	c := MustNew("menu")
	mod := Many("open", "dark")

	first, err := c.Class("item", mod)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		got, err := c.Class("item", mod)
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}
}

func TestResolveConfig(t *testing.T) {
	assert.Equal(t, Config{ElementSeparator: "__", ModifierSeparator: "--"}, ResolveConfig())
	assert.Equal(t, Config{ElementSeparator: "-", ModifierSeparator: "--"}, ResolveConfig(WithElementSeparator("-")))
	assert.Equal(t, Config{ElementSeparator: "__", ModifierSeparator: "_"}, ResolveConfig(nil, WithModifierSeparator("_")))
	assert.Equal(t, Config{ElementSeparator: "E", ModifierSeparator: "M"},
		ResolveConfig(WithConfig(Config{ElementSeparator: "E", ModifierSeparator: "M"})))
}

func TestConfigCheck(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "defaults", cfg: DefaultConfig()},
		{name: "single char", cfg: Config{ElementSeparator: "-", ModifierSeparator: "_"}},
		{name: "empty element", cfg: Config{ModifierSeparator: "--"}, wantErr: "element separator is empty"},
		{name: "space", cfg: Config{ElementSeparator: "__", ModifierSeparator: " "}, wantErr: "contains whitespace"},
		{name: "dot", cfg: Config{ElementSeparator: ".", ModifierSeparator: "--"}, wantErr: "contains '.'"},
		{name: "same", cfg: Config{ElementSeparator: "-", ModifierSeparator: "-"}, wantErr: "both"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Check()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
