package palette_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/wsuwp/colorpalette/internal/db"
	"github.com/wsuwp/colorpalette/internal/palette"
)

func TestAssignAndResolveWithSQLiteStore(t *testing.T) {
	ctx := context.Background()

	database, err := db.OpenInMemory()
	require.NoError(t, err)
	defer database.Close()
	require.NoError(t, database.Migrate(ctx))

	var extra []palette.Palette
	registry := palette.NewRegistry(
		palette.WithProvider(palette.ProviderFunc(func() []palette.Palette { return extra })),
		palette.WithRegistryLogger(zerolog.Nop()),
	)
	store := db.NewMetaRepository(database)
	svc := palette.NewService(registry, store, palette.WithServiceLogger(zerolog.Nop()))

	ok, err := svc.Assign(ctx, "green", "page-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{"palette-green", "palette-text-green"}, svc.ResolveClassNames(ctx, "page-1", true))

	ok, err = svc.Assign(ctx, "invalid", "page-1")
	require.NoError(t, err)
	require.False(t, ok)
	stored, err := store.GetMeta(ctx, "page-1", palette.DefaultMetaKey)
	require.NoError(t, err)
	require.Equal(t, "green", stored)

	extra = []palette.Palette{{Key: "testing", Name: "Testing", Hex: "#000000"}}
	ok, err = svc.Assign(ctx, "testing", "page-2")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{"palette-testing", "palette-text-testing"}, svc.ResolveClassNames(ctx, "page-2", true))

	extra = nil
	require.Equal(t, []string{"palette-default", "palette-text-default"}, svc.ResolveClassNames(ctx, "page-2", true))
	require.Equal(t, []string{"palette-default", "palette-text-default"}, svc.ResolveClassNames(ctx, "page-1", false))
}
