package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/faftech/portfolio-admin/pkg/render"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var outputFormat string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "portfolio-admin",
	Short: "Manage portfolio content from the terminal",
	Long: `portfolio-admin is the admin dashboard for a personal portfolio site.

It reads projects, articles, experiences, skills, achievements, the profile and
contact details from the portfolio REST API, and creates, updates and deletes
articles, experiences and skill categories with an admin token.

Every admin action is recorded in a local activity log.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.portfolio-admin/config.json)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json or yaml")
}

// getVerbose returns the verbose flag value.
func getVerbose() (result bool) {
	result = verbose
	return result
}

// getConfigFile returns the config file path.
func getConfigFile() (result string) {
	result = configFile
	return result
}

// getOutput returns the parsed output format.
func getOutput() (result render.Format, err error) {
	result, err = render.ParseFormat(outputFormat)
	return result, err
}
