package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/five82/shopflow/internal/catalog"
	"github.com/five82/shopflow/internal/config"
	"github.com/five82/shopflow/internal/prefs"
	"github.com/five82/shopflow/internal/shop"
	"github.com/five82/shopflow/internal/ui"
)

// Options configure the shopflow application. Non-empty fields override the
// config file.
type Options struct {
	ConfigPath  string
	CatalogPath string
	LogFile     string
	LogLevel    string
	Theme       string
	PrefsPath   string // empty uses default ~/.config/shopflow/prefs.toml
}

// Run boots the shopflow TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("using default preferences", slog.Any("error", err))
	}
	theme := userPrefs.Theme
	if opts.Theme != "" {
		theme = opts.Theme
	}

	vm := shop.New(shop.Options{
		Source: sourceFor(cfg),
		Logger: logger,
	})
	defer vm.Close()

	logger.Info("session started",
		slog.String("session", vm.Session()),
		slog.Bool("sample_catalog", cfg.UsesSampleCatalog()),
		slog.String("catalog", cfg.CatalogPath))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(runCtx)

	// Load in the background so the first frame shows the loading state.
	g.Go(func() error {
		StartLoad(gCtx, vm, logger)
		return nil
	})

	g.Go(func() error {
		defer cancel()
		return ui.Run(ui.Options{
			Context:        gCtx,
			ViewModel:      vm,
			ThemeName:      theme,
			PrefsPath:      opts.PrefsPath,
			BannerInterval: cfg.BannerInterval,
			Logger:         logger,
		})
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func resolveConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.SetCatalogPath(opts.CatalogPath); err != nil {
		return config.Config{}, err
	}
	if err := cfg.SetLogFile(opts.LogFile); err != nil {
		return config.Config{}, err
	}
	if err := cfg.SetLogLevel(opts.LogLevel); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func sourceFor(cfg config.Config) catalog.Source {
	if cfg.UsesSampleCatalog() {
		return catalog.Sample()
	}
	return catalog.FileSource{Path: cfg.CatalogPath}
}
