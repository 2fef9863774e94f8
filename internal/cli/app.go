// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/appearance/internal/application/port"
	"github.com/bnema/appearance/internal/application/usecase"
	"github.com/bnema/appearance/internal/cli/styles"
	"github.com/bnema/appearance/internal/domain/build"
	"github.com/bnema/appearance/internal/domain/entity"
	"github.com/bnema/appearance/internal/infrastructure/colorscheme"
	"github.com/bnema/appearance/internal/infrastructure/config"
	"github.com/bnema/appearance/internal/infrastructure/fonts"
	"github.com/bnema/appearance/internal/infrastructure/nativetheme"
	"github.com/bnema/appearance/internal/infrastructure/osinfo"
	"github.com/bnema/appearance/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/appearance/internal/logging"
)

// Options tweaks how NewApp locates its configuration.
type Options struct {
	// ConfigFile overrides the XDG config location when set.
	ConfigFile string
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info
	// ConfigErr is set when the config file could not be loaded and
	// defaults are being served instead.
	ConfigErr error

	DB       *sqlite.LazyDB
	Store    port.PreferenceStore
	OS       *osinfo.Detector
	Resolver *colorscheme.Resolver
	Bridge   *nativetheme.Bridge
	Fonts    *fonts.Detector

	// Use cases
	AppearanceUC *usecase.ManageAppearanceUseCase

	// Context with logger
	ctx        context.Context
	logCleanup func()
	synced     bool
}

// NewApp creates a new CLI application with all dependencies.
// The preference database is opened on first use.
func NewApp(opts Options) (*App, error) {
	// Bootstrap logger until the config tells us otherwise.
	ctx := logging.WithContext(context.Background(), logging.NewFromEnv())

	mgr, cfg, loadErr := loadConfig(ctx, opts.ConfigFile)
	if mgr == nil {
		return nil, loadErr
	}

	logger, logCleanup, logErr := newLogger(cfg)
	ctx = logging.WithContext(context.Background(), logger)
	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("using default configuration")
	}
	if logErr != nil {
		logger.Warn().Err(logErr).Msg("file logging disabled")
	}

	dbFile := cfg.Database.Path
	if dbFile == "" {
		var err error
		if dbFile, err = config.GetDatabaseFile(); err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}
	db := sqlite.NewLazyDB(dbFile)
	store := sqlite.NewLazyPreferenceStore(db)

	resolver := colorscheme.NewResolver(colorscheme.NewConfigAdapter(mgr.Get))
	colorscheme.RegisterDefaultDetectors(resolver)
	resolver.Refresh()

	bridge := nativetheme.NewBridge(resolver, nativetheme.DefaultQueueSize)
	osDetector := osinfo.NewDetector()
	fontDetector := fonts.NewDetector(fonts.WithCommand(cfg.Fonts.Command))

	appearanceUC := usecase.NewManageAppearanceUseCase(store, osDetector, bridge)

	logger.Debug().
		Str("config_file", mgr.GetConfigFile()).
		Str("db_path", dbFile).
		Strs("detectors", resolver.Detectors()).
		Msg("cli app initialized")

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		ConfigErr:     loadErr,
		Theme:         styles.NewTheme(entity.ApplicableFromDark(bridge.ShouldUseDarkColors(ctx))),
		DB:            db,
		Store:         store,
		OS:            osDetector,
		Resolver:      resolver,
		Bridge:        bridge,
		Fonts:         fontDetector,
		AppearanceUC:  appearanceUC,
		ctx:           ctx,
		logCleanup:    logCleanup,
	}, nil
}

// SyncNativeTheme pushes the persisted theme and font face to the bridge,
// the way a host does at startup, and restyles the CLI to match.
// It opens the preference database.
func (a *App) SyncNativeTheme() entity.Theme {
	theme := a.AppearanceUC.GetPersistedThemeName(a.ctx)
	if a.synced {
		return theme
	}
	a.synced = true

	a.Bridge.SetNativeThemeSource(a.ctx, a.AppearanceUC.ResolveThemeName(theme))
	a.Bridge.SetFontFaceSource(a.ctx, a.AppearanceUC.GetPersistedFontFace(a.ctx))
	a.Theme = styles.NewTheme(a.AppearanceUC.GetCurrentlyAppliedTheme(a.ctx))
	return theme
}

// StartToolkit attaches the native chrome appliers available in this
// build. The returned channel, when non-nil, closes once the toolkit loop
// has stopped after ctx is cancelled.
func (a *App) StartToolkit(ctx context.Context) <-chan struct{} {
	return startToolkit(ctx, a.Bridge)
}

// Close applies pending bridge updates and releases all resources.
func (a *App) Close() error {
	if n := a.Bridge.Flush(a.ctx); n > 0 {
		logging.FromContext(a.ctx).Debug().Int("updates", n).Msg("flushed native theme updates")
	}
	var err error
	if a.DB != nil {
		err = a.DB.Close()
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from the given file or the XDG location.
// A load failure still returns a manager serving defaults.
func loadConfig(ctx context.Context, configFile string) (*config.Manager, *config.Config, error) {
	var (
		mgr *config.Manager
		err error
	)
	if configFile != "" {
		mgr, err = config.NewManagerForFile(configFile)
	} else {
		mgr, err = config.NewManager()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("initialize config: %w", err)
	}

	if err := mgr.Load(ctx); err != nil {
		return mgr, mgr.Get(), fmt.Errorf("load config: %w", err)
	}
	return mgr, mgr.Get(), nil
}

func newLogger(cfg *config.Config) (zerolog.Logger, func(), error) {
	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Logging.Level)
	if cfg.Logging.Format != "" {
		logCfg.Format = cfg.Logging.Format
	}
	logCfg.TimeFormat = "15:04:05"

	return logging.NewWithFile(logCfg, logging.FileConfig{
		Enabled:       cfg.Logging.EnableFileLog && cfg.Logging.LogDir != "",
		WriteToStderr: true,
		Rotator: logging.RotatorConfig{
			Dir:        cfg.Logging.LogDir,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAge,
			Compress:   cfg.Logging.Compress,
		},
	})
}
