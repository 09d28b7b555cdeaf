package palette

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSanitizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "green", want: "green"},
		{in: "Green", want: "green"},
		{in: "dark-blue_2", want: "dark-blue_2"},
		{in: "bad key!", want: "badkey"},
		{in: "<script>", want: "script"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, SanitizeKey(tt.in))
		})
	}
}

func TestClassNames(t *testing.T) {
	require.Equal(t, []string{"palette-green", "palette-text-green"}, ClassNames("green"))
	require.Equal(t, []string{"palette-default", "palette-text-default"}, DefaultClassNames())
}

func TestBuiltinsReturnsCopy(t *testing.T) {
	first := Builtins()
	first[0].Hex = "#000000"

	second := Builtins()
	require.Equal(t, "#981e32", second[0].Hex)
}

func TestRegistryBuiltinSnapshot(t *testing.T) {
	snap := NewRegistry(WithRegistryLogger(zerolog.Nop())).Palettes()

	require.Equal(t, []string{"default", "crimson", "gray", "green", "yellow", "blue", "orange"}, snap.Keys())

	def, ok := snap.Get(DefaultKey)
	require.True(t, ok)
	require.Equal(t, Palette{Key: "default", Name: "Default", Hex: "#ffffff"}, def)

	green, ok := snap.Get("green")
	require.True(t, ok)
	require.Equal(t, "Green", green.Name)
	require.Equal(t, "#8f7e35", green.Hex)
}

func TestRegistryProviderMerge(t *testing.T) {
	provider := Static{
		{Key: "testing", Name: "Testing", Hex: "#000000"},
		{Key: "gray", Name: "Slate", Hex: "#333333"},
	}
	snap := NewRegistry(WithProvider(provider), WithRegistryLogger(zerolog.Nop())).Palettes()

	require.Equal(t, []string{"default", "crimson", "gray", "green", "yellow", "blue", "orange", "testing"}, snap.Keys())

	gray, _ := snap.Get("gray")
	require.Equal(t, Palette{Key: "gray", Name: "Slate", Hex: "#333333"}, gray)
	require.True(t, snap.Has("testing"))
	require.Equal(t, 8, snap.Len())
}

func TestRegistryProviderCannotReplaceDefault(t *testing.T) {
	provider := Static{{Key: DefaultKey, Name: "Black", Hex: "#000000"}}
	snap := NewRegistry(WithProvider(provider), WithRegistryLogger(zerolog.Nop())).Palettes()

	def, _ := snap.Get(DefaultKey)
	require.Equal(t, Default(), def)
	require.Equal(t, DefaultKey, snap.Keys()[0])
}

func TestRegistryIgnoresUnsanitizedProviderKeys(t *testing.T) {
	provider := Static{
		{Key: "Testing", Name: "Upper"},
		{Key: "with space", Name: "Space"},
		{Key: "", Name: "Empty"},
		{Key: "ok-key", Name: "Ok"},
	}
	snap := NewRegistry(WithProvider(provider), WithRegistryLogger(zerolog.Nop())).Palettes()

	require.False(t, snap.Has("Testing"))
	require.False(t, snap.Has("with space"))
	require.False(t, snap.Has(""))
	require.True(t, snap.Has("ok-key"))
}

func TestRegistryFollowsProviderChanges(t *testing.T) {
	var extra []Palette
	registry := NewRegistry(
		WithProvider(ProviderFunc(func() []Palette { return extra })),
		WithRegistryLogger(zerolog.Nop()),
	)

	require.False(t, registry.Palettes().Has("testing"))

	extra = []Palette{{Key: "testing", Name: "Testing", Hex: "#000000"}}
	require.True(t, registry.Palettes().Has("testing"))

	extra = nil
	require.False(t, registry.Palettes().Has("testing"))
}

func TestSnapshotListIsDetached(t *testing.T) {
	snap := NewRegistry(WithRegistryLogger(zerolog.Nop())).Palettes()

	list := snap.List()
	list[1].Hex = "#000000"
	keys := snap.Keys()
	keys[0] = "mutated"

	crimson, _ := snap.Get("crimson")
	require.Equal(t, "#981e32", crimson.Hex)
	require.Equal(t, DefaultKey, snap.Keys()[0])
}

func TestChainLaterProviderWins(t *testing.T) {
	chain := Chain{
		Static{{Key: "testing", Name: "First", Hex: "#111111"}},
		nil,
		ProviderFunc(func() []Palette {
			return []Palette{{Key: "testing", Name: "Second", Hex: "#222222"}}
		}),
	}
	snap := NewRegistry(WithProvider(chain), WithRegistryLogger(zerolog.Nop())).Palettes()

	entry, ok := snap.Get("testing")
	require.True(t, ok)
	require.Equal(t, "Second", entry.Name)
}
