package bem

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingHook wraps CreateHook and records how often it builds.
func countingHook(opts ...Option) (Hook, *int) {
	var calls int
	build := CreateHook(opts...)
	return func(block string) (*Composer, error) {
		calls++
		return build(block)
	}, &calls
}

func TestAdapt_Interactive(t *testing.T) {
	build, calls := countingHook()
	hook := Adapt(build, Interactive, &Memo{})

	first, err := hook("card")
	require.NoError(t, err)
	second, err := hook("card")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, *calls)

	changed, err := hook("menu")
	require.NoError(t, err)
	assert.NotSame(t, first, changed)
	assert.Equal(t, "menu", changed.Block())
	assert.Equal(t, 2, *calls)

	// Single slot: going back to the first block builds again.
	again, err := hook("card")
	require.NoError(t, err)
	assert.NotSame(t, first, again)
	assert.Equal(t, 3, *calls)
}

func TestAdapt_Static(t *testing.T) {
	build, calls := countingHook()
	memo := &Memo{}
	hook := Adapt(build, Static, memo)

	first, err := hook("card")
	require.NoError(t, err)
	second, err := hook("card")
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, 2, *calls)
	assert.Nil(t, memo.value, "static environment must not touch the cache")

	// Output is identical either way.
	assert.Equal(t, first.Must("el", Single("m")), second.Must("el", Single("m")))
}

func TestAdapt_NilCache(t *testing.T) {
	build, calls := countingHook()
	hook := Adapt(build, Interactive, nil)

	_, err := hook("card")
	require.NoError(t, err)
	_, err = hook("card")
	require.NoError(t, err)
	assert.Equal(t, 2, *calls)
}

func TestAdapt_ErrorsAreNotCached(t *testing.T) {
	build, calls := countingHook()
	memo := &Memo{}
	hook := build.Memoize(Interactive, memo)

	_, err := hook("bad block")
	require.ErrorIs(t, err, ErrWhitespace)
	_, err = hook("bad block")
	require.ErrorIs(t, err, ErrWhitespace)
	assert.Equal(t, 2, *calls)
	assert.Nil(t, memo.value)
}

func TestMemo_EmptyKey(t *testing.T) {
	memo := &Memo{}
	produced := 0
	produce := func() (*Composer, error) {
		produced++
		return MustNew(""), nil
	}

	first, err := memo.GetOrCompute("", produce)
	require.NoError(t, err)
	second, err := memo.GetOrCompute("", produce)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, produced)
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	build, calls := countingHook()
	hook := build.Memoize(Interactive, reg)

	card, err := hook("card")
	require.NoError(t, err)
	menu, err := hook("menu")
	require.NoError(t, err)
	cardAgain, err := hook("card")
	require.NoError(t, err)

	assert.Same(t, card, cardAgain)
	assert.NotSame(t, card, menu)
	assert.Equal(t, 2, *calls)
	assert.Equal(t, 2, reg.Len())

	_, err = hook("no good")
	require.Error(t, err)
	assert.Equal(t, 2, reg.Len())
}

func TestRegistry_MixedSeparators(t *testing.T) {
	ctx := WithEnvironment(context.Background(), Interactive)
	ctx = WithCache(ctx, NewRegistry())
	custom := CreateHook(WithElementSeparator("-"), WithModifierSeparator("_"))

	tests := []struct {
		name string
		hook Hook
		want string
	}{
		{name: "default first", hook: Use, want: "card__e card__e--m"},
		{name: "custom", hook: custom, want: "card-e card-e_m"},
		{name: "default again", hook: Use, want: "card__e card__e--m"},
		{name: "custom again", hook: custom, want: "card-e card-e_m"},
	}

	seen := make(map[string]*Composer)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.hook.InContext(ctx)("card")
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Must("e", Single("m")))

			if prev, ok := seen[tt.want]; ok {
				assert.Same(t, prev, c)
			}
			seen[tt.want] = c
		})
	}

	assert.Equal(t, 2, CacheFromContext(ctx).(*Registry).Len())
	assert.NotSame(t, seen["card__e card__e--m"], seen["card-e card-e_m"])
}

func TestMemo_SeparatorChange(t *testing.T) {
	memo := &Memo{}
	def := Hook(Use).Memoize(Interactive, memo)
	custom := CreateHook(WithElementSeparator("-")).Memoize(Interactive, memo)

	a, err := def("card")
	require.NoError(t, err)
	b, err := custom("card")
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.Equal(t, "card__e", a.Must("e", nil))
	assert.Equal(t, "card-e", b.Must("e", nil))
}

func TestRegistry_Concurrent(t *testing.T) {
	reg := NewRegistry()
	hook := Use
	memoized := Hook(hook).Memoize(Interactive, reg)

	var wg sync.WaitGroup
	results := make([]*Composer, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := memoized("card")
			if err == nil {
				results[i] = c
			}
		}(i)
	}
	wg.Wait()

	for _, c := range results {
		require.NotNil(t, c)
		assert.Same(t, results[0], c)
	}
}

func TestHookInContext(t *testing.T) {
	build, calls := countingHook()

	t.Run("empty context builds every time", func(t *testing.T) {
		*calls = 0
		hook := build.InContext(context.Background())
		_, _ = hook("card")
		_, _ = hook("card")
		assert.Equal(t, 2, *calls)
	})

	t.Run("interactive context reuses", func(t *testing.T) {
		*calls = 0
		ctx := WithEnvironment(context.Background(), Interactive)
		ctx = WithCache(ctx, NewRegistry())

		hook := build.InContext(ctx)
		a, err := hook("card")
		require.NoError(t, err)
		b, err := hook("card")
		require.NoError(t, err)
		assert.Same(t, a, b)
		assert.Equal(t, 1, *calls)

		// A fresh adaptation builds once to learn its separators, then
		// hands back the cached composer.
		c, err := build.InContext(ctx)("card")
		require.NoError(t, err)
		assert.Same(t, a, c)
		assert.Equal(t, 2, *calls)
	})

	t.Run("cache without interactive environment is ignored", func(t *testing.T) {
		*calls = 0
		ctx := WithCache(context.Background(), NewRegistry())
		_, _ = build.InContext(ctx)("card")
		_, _ = build.InContext(ctx)("card")
		assert.Equal(t, 2, *calls)
	})
}

func TestParseEnvironment(t *testing.T) {
	tests := []struct {
		in      string
		want    Environment
		wantErr bool
	}{
		{in: "", want: Static},
		{in: "static", want: Static},
		{in: "Server", want: Static},
		{in: "interactive", want: Interactive},
		{in: " CLIENT ", want: Interactive},
		{in: "browser?", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEnvironment(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "static", Static.String())
	assert.Equal(t, "interactive", Interactive.String())
}

func TestContextDefaults(t *testing.T) {
	assert.Equal(t, Static, EnvironmentFromContext(nil))
	assert.Nil(t, CacheFromContext(nil))
	assert.Equal(t, Static, EnvironmentFromContext(context.Background()))
}

func TestCreateHook(t *testing.T) {
	hook := CreateHook(WithElementSeparator("-"), WithModifierSeparator("_"))

	c, err := hook("b")
	require.NoError(t, err)
	assert.Equal(t, "b-e b-e_m", c.Must("e", Single("m")))

	c, err = Use("block")
	require.NoError(t, err)
	assert.Equal(t, "block__el block__el--a block__el--b", c.Must("el", Many("a", "b")))

	_, err = Use("my block")
	require.ErrorIs(t, err, ErrWhitespace)
}
