package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/appearance/internal/cli/styles"
	"github.com/bnema/appearance/internal/infrastructure/config"
)

var (
	configSchemaWrite bool
	configInitForce   bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show config locations, print the active configuration or its JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file and database locations",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active configuration as TOML",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long: `Write the default configuration file.

An existing file is left untouched unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSchemaCmd)
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")
	configSchemaCmd.Flags().BoolVarP(&configSchemaWrite, "write", "w", false, "write the schema next to the config file")
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	t := app.Theme
	fmt.Printf("%s %s\n", t.Subtle.Render("config  "), t.Normal.Render(app.ConfigManager.GetConfigFile()))
	fmt.Printf("%s %s\n", t.Subtle.Render("database"), t.Normal.Render(app.DB.Path()))
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	data, err := config.EncodeOrdered(app.ConfigManager.Get())
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	renderer := styles.NewAppearanceRenderer(app.Theme)
	path := app.ConfigManager.GetConfigFile()

	if _, statErr := os.Stat(path); statErr == nil && !configInitForce {
		fmt.Println(app.Theme.Subtle.Render("Config already exists at " + path + " (use --force to overwrite)"))
		return nil
	}

	if err := config.WriteConfigOrdered(config.DefaultConfig(), path); err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}
	fmt.Printf("%s Wrote %s\n", app.Theme.SuccessStyle.Render(styles.IconCheck), app.Theme.Highlight.Render(path))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	if configSchemaWrite {
		path, err := config.GetSchemaFile()
		if err != nil {
			return err
		}
		if err := config.WriteSchemaFile(path); err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	}

	schema, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	fmt.Println(string(schema))
	return nil
}
