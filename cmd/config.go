package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/faftech/portfolio-admin/pkg/config"
	"github.com/faftech/portfolio-admin/pkg/render"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write a default configuration file to $HOME/.portfolio-admin/config.json
(or the path given with --config). An existing file is never overwritten.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

//nolint:gochecknoglobals // Cobra boilerplate
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the effective configuration",
	Long: `Show the configuration after defaults, the config file and environment
overrides are applied. The API key is masked.`,
	Args: cobra.NoArgs,
	RunE: runSettings,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runInit(cmd *cobra.Command, args []string) (err error) {
	path := getConfigFile()
	if path == "" {
		path, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}

	err = config.InitConfig(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
	return err
}

func runSettings(cmd *cobra.Command, args []string) (err error) {
	var format render.Format
	format, err = getOutput()
	if err != nil {
		return err
	}

	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return err
	}
	masked := cfg.Masked()

	if format != render.FormatText {
		err = render.Encode(cmd.OutOrStdout(), format, masked)
		return err
	}

	apiKey := masked.AI.APIKey
	if apiKey == "" {
		apiKey = "(not set)"
	}
	model := masked.AI.Model
	if model == "" {
		model = "(provider default)"
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), render.New().Settings([][2]string{
		{"API base URL", masked.BaseURL},
		{"Environment", masked.Environment},
		{"Admin", masked.AdminName},
		{"Token file", masked.TokenPath},
		{"Activity log", masked.ActivityDB},
		{"AI provider", masked.AI.Provider},
		{"AI model", model},
		{"AI API key", apiKey},
	}))
	return err
}
