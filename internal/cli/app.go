package cli

import (
	"context"
	"fmt"

	"github.com/wsuwp/colorpalette/internal/config"
	"github.com/wsuwp/colorpalette/internal/db"
	"github.com/wsuwp/colorpalette/internal/editor"
	"github.com/wsuwp/colorpalette/internal/extensions"
	"github.com/wsuwp/colorpalette/internal/models"
	"github.com/wsuwp/colorpalette/internal/palette"
	"github.com/wsuwp/colorpalette/internal/paletted"
	"github.com/wsuwp/colorpalette/internal/render"
)

// app holds the wired services for one command invocation.
type app struct {
	db      *db.DB
	items   *db.ItemRepository
	meta    *db.MetaRepository
	events  *db.EventRepository
	files   *extensions.DirProvider
	service *palette.Service
	editor  *editor.Handler
	classes *render.BodyClasser
}

func openDatabase(ctx context.Context) (*db.DB, error) {
	cfg := GetConfig()
	database, err := db.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return database, nil
}

// newApp opens the database and builds the registry from palette files and
// inline config extensions. Inline entries win over files.
func newApp(ctx context.Context) (*app, error) {
	cfg := GetConfig()

	database, err := openDatabase(ctx)
	if err != nil {
		return nil, err
	}

	files, err := extensions.NewDirProvider(extensions.SearchPaths(cfg.Palette.ExtensionDirs))
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to load palette files: %w", err)
	}

	policy, err := render.PolicyFor(cfg.Palette.EligibilityRule, models.ItemType(cfg.Palette.EligibleType))
	if err != nil {
		database.Close()
		return nil, err
	}

	a := &app{
		db:     database,
		items:  db.NewItemRepository(database),
		meta:   db.NewMetaRepository(database),
		events: db.NewEventRepository(database),
		files:  files,
	}

	registry := palette.NewRegistry(palette.WithProvider(palette.Chain{files, inlinePalettes(cfg)}))
	a.service = palette.NewService(registry, a.meta, palette.WithMetaKey(cfg.Palette.MetaKey))
	a.editor = editor.NewHandler(a.service, a.items,
		editor.WithEligibleType(models.ItemType(cfg.Palette.EligibleType)),
		editor.WithEventRepository(a.events),
	)
	a.classes, err = render.NewBodyClasser(a.service, policy)
	if err != nil {
		database.Close()
		return nil, err
	}
	return a, nil
}

func (a *app) Close() error {
	return a.db.Close()
}

func (a *app) backend() paletted.Backend {
	return paletted.Backend{
		Palettes: a.service,
		Editor:   a.editor,
		Classes:  a.classes,
		Items:    a.items,
	}
}

func inlinePalettes(cfg *config.Config) palette.Static {
	out := make(palette.Static, 0, len(cfg.Palette.Extensions))
	for _, ext := range cfg.Palette.Extensions {
		out = append(out, palette.Palette{Key: ext.Key, Name: ext.Name, Hex: ext.Hex})
	}
	return out
}
