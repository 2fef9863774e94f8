package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/appearance/internal/application/port"
	"github.com/bnema/appearance/internal/cli"
	"github.com/bnema/appearance/internal/cli/styles"
	"github.com/bnema/appearance/internal/domain/entity"
	"github.com/bnema/appearance/internal/infrastructure/config"
	"github.com/bnema/appearance/internal/infrastructure/nativetheme"
	"github.com/bnema/appearance/internal/logging"
)

const defaultWatchInterval = 2 * time.Second

var watchInterval time.Duration

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the theme preference",
	Long: `Show or change the theme preference.

Without a subcommand, prints the persisted theme (light, dark or system).`,
	RunE: runThemeGet,
}

var themeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the persisted theme",
	Args:  cobra.NoArgs,
	RunE:  runThemeGet,
}

var themeSetCmd = &cobra.Command{
	Use:       "set <light|dark|system>",
	Short:     "Persist a theme and apply it",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(entity.ThemeLight), string(entity.ThemeDark), string(entity.ThemeSystem)},
	RunE:      runThemeSet,
}

var themeAppliedCmd = &cobra.Command{
	Use:   "applied",
	Short: "Print the theme currently in effect (light or dark)",
	Args:  cobra.NoArgs,
	RunE:  runThemeApplied,
}

var themeSupportsSystemCmd = &cobra.Command{
	Use:   "supports-system",
	Short: "Report whether this OS can drive the system theme",
	Long: `Report whether this OS can drive the system theme.

macOS needs Mojave (10.14) or later and Windows needs build 17666 or later.
Every other platform is reported as supported. Exits with status 2 when
unsupported.`,
	Args: cobra.NoArgs,
	RunE: runThemeSupportsSystem,
}

var themeDetectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show the OS color-scheme detection result",
	Args:  cobra.NoArgs,
	RunE:  runThemeDetect,
}

var themeWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow theme, font and OS appearance changes",
	Long: `Apply the persisted preferences and keep following changes.

While the theme is system, OS dark-mode changes are picked up by polling the
color-scheme detectors. Config file edits are reloaded live.`,
	Args: cobra.NoArgs,
	RunE: runThemeWatch,
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeGetCmd)
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themeAppliedCmd)
	themeCmd.AddCommand(themeSupportsSystemCmd)
	themeCmd.AddCommand(themeDetectCmd)
	themeCmd.AddCommand(themeWatchCmd)
	themeWatchCmd.Flags().DurationVar(&watchInterval, "interval", defaultWatchInterval, "OS color-scheme polling interval")
}

func runThemeGet(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	theme := app.SyncNativeTheme()
	fmt.Println(styles.NewAppearanceRenderer(app.Theme).RenderTheme(theme))
	return nil
}

func runThemeSet(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	theme, ok := entity.ParseTheme(strings.ToLower(strings.TrimSpace(args[0])))
	if !ok {
		return fmt.Errorf("invalid theme %q: expected light, dark or system", args[0])
	}

	ctx := app.Ctx()
	// Retire the legacy flag first so it cannot override the new value later.
	app.AppearanceUC.MigrateLegacyAutoSwitch(ctx)
	if err := app.AppearanceUC.SetPersistedTheme(ctx, theme); err != nil {
		return err
	}

	renderer := styles.NewAppearanceRenderer(styles.NewTheme(app.AppearanceUC.GetCurrentlyAppliedTheme(ctx)))
	fmt.Println(renderer.RenderThemeSaved(theme))
	return nil
}

func runThemeApplied(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	app.SyncNativeTheme()
	applied := app.AppearanceUC.GetCurrentlyAppliedTheme(app.Ctx())
	fmt.Println(styles.NewAppearanceRenderer(app.Theme).RenderApplied(applied, appliedSource(app)))
	return nil
}

func runThemeSupportsSystem(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	supported := app.AppearanceUC.SupportsSystemThemeChanges()
	osName := app.OS.GOOS()
	if v := app.OS.Version(); v != "" {
		osName += " " + v
	}
	fmt.Println(styles.NewAppearanceRenderer(app.Theme).RenderSupportsSystem(supported, osName))

	if !supported {
		_ = app.Close()
		os.Exit(2)
	}
	return nil
}

func runThemeDetect(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	t := app.Theme
	pref := app.Resolver.Refresh()
	fmt.Println(styles.NewAppearanceRenderer(t).RenderApplied(entity.ApplicableFromDark(pref.PrefersDark), pref.Source))
	for _, name := range app.Resolver.Detectors() {
		marker := t.Subtle.Render("  ")
		if name == pref.Source {
			marker = t.SuccessStyle.Render(styles.IconCheck + " ")
		}
		fmt.Println(marker + t.Normal.Render(name))
	}
	return nil
}

func runThemeWatch(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)

	app.SyncNativeTheme()
	renderer := styles.NewAppearanceRenderer(app.Theme)
	fmt.Println(renderer.RenderWatching(app.ConfigManager.GetConfigFile()))

	toolkitDone := app.StartToolkit(ctx)

	unsubscribe := app.Bridge.OnUpdate(func(u nativetheme.Update) {
		fmt.Println(renderUpdate(renderer, app, u))
	})
	defer unsubscribe()

	unwatch := app.Resolver.OnChange(func(pref port.ColorSchemePreference) {
		log.Debug().Bool("prefers_dark", pref.PrefersDark).Str("source", pref.Source).Msg("os color scheme changed")
		app.Bridge.NotifySystemChange(ctx)
	})
	defer unwatch()

	app.ConfigManager.OnConfigChange(func(*config.Config) {
		app.Resolver.Refresh()
	})
	if err := app.ConfigManager.Watch(ctx); err != nil {
		log.Warn().Err(err).Msg("config hot reload disabled")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.Bridge.Run(gctx)
	})

	followSystem := app.AppearanceUC.SupportsSystemThemeChanges()
	if !followSystem {
		fmt.Println(renderer.RenderSupportsSystem(false, app.OS.GOOS()))
	}
	g.Go(func() error {
		pollChanges(gctx, app, watchInterval, followSystem)
		return nil
	})

	err = g.Wait()
	if toolkitDone != nil {
		<-toolkitDone
	}
	return err
}

// pollChanges picks up preferences written by other processes and, when the
// OS can report it, dark-mode changes.
func pollChanges(ctx context.Context, app *cli.App, interval time.Duration, followSystem bool) {
	if interval <= 0 {
		interval = defaultWatchInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			syncPersisted(ctx, app)
			if followSystem {
				app.Resolver.Refresh()
			}
		}
	}
}

func syncPersisted(ctx context.Context, app *cli.App) {
	uc := app.AppearanceUC
	if source := uc.ResolveThemeName(uc.GetPersistedThemeName(ctx)); source != app.Bridge.ThemeSource() {
		app.Bridge.SetNativeThemeSource(ctx, source)
	}
	if fontFace := uc.GetPersistedFontFace(ctx); fontFace != app.Bridge.FontFace() {
		app.Bridge.SetFontFaceSource(ctx, fontFace)
	}
}

func renderUpdate(r *styles.AppearanceRenderer, app *cli.App, u nativetheme.Update) string {
	switch u.Kind {
	case nativetheme.UpdateFontFace:
		return r.RenderFontFace(u.FontFace)
	default:
		return r.RenderApplied(entity.ApplicableFromDark(u.PrefersDark), appliedSource(app))
	}
}

// appliedSource names what decided the effective theme.
func appliedSource(app *cli.App) string {
	source := app.Bridge.ThemeSource()
	if source != entity.ThemeSourceSystem {
		return "user"
	}
	return "system: " + app.Resolver.Current().Source
}
