package cmd

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/appearance/internal/application/port"
	"github.com/bnema/appearance/internal/cli/model"
	"github.com/bnema/appearance/internal/cli/styles"
)

var fontListQuote bool

var fontCmd = &cobra.Command{
	Use:   "font",
	Short: "Show or change the font-face preference",
	Long: `Show or change the font-face preference.

Without a subcommand, prints the persisted font face. When none was ever
saved, the built-in Helvetica stack is reported.`,
	RunE: runFontGet,
}

var fontGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the persisted font face",
	Args:  cobra.NoArgs,
	RunE:  runFontGet,
}

var fontSetCmd = &cobra.Command{
	Use:   "set <font-face>",
	Short: "Persist a font face and apply it",
	Long: `Persist a font face and apply it.

The value is stored as given, so a CSS font-family list works too:

  appearance font set '"Fira Sans", sans-serif'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFontSet,
}

var fontListCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed font families",
	Args:  cobra.NoArgs,
	RunE:  runFontList,
}

var fontPickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a font face interactively",
	Args:  cobra.NoArgs,
	RunE:  runFontPick,
}

func init() {
	rootCmd.AddCommand(fontCmd)
	fontCmd.AddCommand(fontGetCmd)
	fontCmd.AddCommand(fontSetCmd)
	fontCmd.AddCommand(fontListCmd)
	fontCmd.AddCommand(fontPickCmd)
	fontListCmd.Flags().BoolVarP(&fontListQuote, "quote", "q", false, "quote names containing spaces for CSS use")
}

func runFontGet(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	fontFace := app.AppearanceUC.GetPersistedFontFace(app.Ctx())
	fmt.Println(styles.NewAppearanceRenderer(app.Theme).RenderFontFace(fontFace))
	return nil
}

func runFontSet(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	fontFace, err := fontFaceArg(args)
	if err != nil {
		return err
	}

	if err := app.AppearanceUC.SetPersistedFontFace(app.Ctx(), fontFace); err != nil {
		return err
	}
	fmt.Println(styles.NewAppearanceRenderer(app.Theme).RenderFontSaved(fontFace))
	return nil
}

// fontFaceArg joins the arguments as given. Only an all-blank value is rejected.
func fontFaceArg(args []string) (string, error) {
	fontFace := strings.Join(args, " ")
	if strings.TrimSpace(fontFace) == "" {
		return "", errors.New("font face must not be empty")
	}
	return fontFace, nil
}

func runFontList(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	ctx := app.Ctx()
	if !app.Fonts.IsAvailable(ctx) {
		return fmt.Errorf("font listing unavailable: %q not found in PATH (set fonts.command in %s)",
			app.Config.Fonts.Command, app.ConfigManager.GetConfigFile())
	}

	fonts, err := app.Fonts.ListInstalledFonts(ctx, port.FontListOptions{DisableQuoting: !fontListQuote})
	if err != nil {
		return err
	}
	fmt.Println(styles.NewAppearanceRenderer(app.Theme).RenderFontList(fonts))
	return nil
}

func runFontPick(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	ctx := app.Ctx()
	app.SyncNativeTheme()
	current := app.AppearanceUC.GetPersistedFontFace(ctx)

	m := model.NewFontPickModel(ctx, app.Theme, app.Fonts, app.AppearanceUC, &current)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := final.(model.FontPickModel)
	if !ok {
		return nil
	}
	renderer := styles.NewAppearanceRenderer(app.Theme)
	switch {
	case result.Err() != nil:
		fmt.Println(renderer.RenderError(result.Err()))
		return result.Err()
	case result.Saved():
		fmt.Println(renderer.RenderFontSaved(result.Selected()))
	}
	return nil
}
