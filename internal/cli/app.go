// Package cli wires the application dependencies for the CLI commands.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/bnema/plotfont/internal/application/usecase"
	"github.com/bnema/plotfont/internal/cli/styles"
	"github.com/bnema/plotfont/internal/config"
	"github.com/bnema/plotfont/internal/infrastructure/fonts"
	"github.com/bnema/plotfont/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/plotfont/internal/infrastructure/plotstyle"
	"github.com/bnema/plotfont/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	ConfigMgr *config.Manager
	Theme     *styles.Theme
	Registry  *fonts.Registry
	Sink      *plotstyle.Sink

	// Use cases
	SelectUC *usecase.SelectFontUseCase
	ApplyUC  *usecase.ApplyFontUseCase
	ListUC   *usecase.ListFontsUseCase
	CheckUC  *usecase.CheckFontsUseCase

	db      *sql.DB
	watcher *fonts.Watcher
	ctx     context.Context
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	configMgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := configMgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := configMgr.Get()

	logLevel := cfg.Logging.Level
	if envLevel := os.Getenv("PLOTFONT_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}
	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(logLevel),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	})
	ctx := logging.WithContext(context.Background(), logger)

	registryOpts := []fonts.Option{
		fonts.WithFontconfig(cfg.Registry.UseFontconfig),
	}
	if len(cfg.Registry.ExtraDirs) > 0 {
		registryOpts = append(registryOpts, fonts.WithExtraDirs(cfg.Registry.ExtraDirs...))
	}

	// The scan cache only matters for the directory-scan path; losing it
	// degrades startup time, not correctness.
	var db *sql.DB
	if cfg.Database.Enabled {
		db, err = sqlite.NewConnection(ctx, cfg.Database.Path)
		if err != nil {
			logger.Warn().Err(err).Msg("font scan cache unavailable, continuing without it")
			db = nil
		} else {
			registryOpts = append(registryOpts, fonts.WithScanCache(sqlite.NewFontCacheRepo(db)))
		}
	}

	registry := fonts.NewRegistry(registryOpts...)
	sink := plotstyle.NewSink()

	var watcher *fonts.Watcher
	if cfg.Registry.Watch {
		watcher, err = fonts.NewWatcher(ctx, registry)
		if err != nil {
			logger.Warn().Err(err).Msg("font directory watch unavailable")
			watcher = nil
		}
	}

	return &App{
		Config:    cfg,
		ConfigMgr: configMgr,
		Theme:     styles.NewTheme(),
		Registry:  registry,
		Sink:      sink,
		SelectUC:  usecase.NewSelectFontUseCase(registry),
		ApplyUC:   usecase.NewApplyFontUseCase(registry, sink),
		ListUC:    usecase.NewListFontsUseCase(registry),
		CheckUC:   usecase.NewCheckFontsUseCase(registry),
		db:        db,
		watcher:   watcher,
		ctx:       ctx,
	}, nil
}

// Ctx returns the application context carrying the logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Close releases application resources.
func (a *App) Close() error {
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
	return sqlite.Close(a.db)
}
