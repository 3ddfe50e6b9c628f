package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/faftech/portfolio-admin/pkg/activity"
	"github.com/faftech/portfolio-admin/pkg/models"
	"github.com/faftech/portfolio-admin/pkg/views"
)

//nolint:gochecknoglobals // Cobra boilerplate
var logsLimit int

//nolint:gochecknoglobals // Cobra boilerplate
var logsSummarize bool

//nolint:gochecknoglobals // Cobra boilerplate
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show resource counts and recent activity",
	Args:  cobra.NoArgs,
	RunE:  withApp(runDashboard),
}

//nolint:gochecknoglobals // Cobra boilerplate
var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the admin activity log",
	Long: `Show the most recent admin actions recorded on this machine, newest first.

Use --summarize to ask the configured AI provider for a one-line digest.`,
	Args: cobra.NoArgs,
	RunE: withApp(runLogs),
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(logsCmd)
	logsCmd.Flags().IntVar(&logsLimit, "limit", activity.DefaultLimit, "Number of entries to show")
	logsCmd.Flags().BoolVar(&logsSummarize, "summarize", false, "Summarize the entries with the AI provider")
}

type dashboardOutput struct {
	Stats  models.Stats     `json:"stats" yaml:"stats"`
	Recent []activity.Entry `json:"recent" yaml:"recent"`
}

func runDashboard(ctx context.Context, a *app, cmd *cobra.Command, args []string) (err error) {
	view := views.NewDashboardView(a.client, a.activity, a.logger)
	view.Load(ctx)

	err = a.emit(a.renderer.Dashboard(view), dashboardOutput{
		Stats:  view.Stats.Value(),
		Recent: view.Recent.Items(),
	})
	return err
}

type logsOutput struct {
	Entries []activity.Entry `json:"entries" yaml:"entries"`
	Summary string           `json:"summary,omitempty" yaml:"summary,omitempty"`
}

func runLogs(ctx context.Context, a *app, cmd *cobra.Command, args []string) (err error) {
	view := views.NewLogsView(a.activity, logsLimit, a.logger)
	view.Load(ctx)

	text := a.renderer.Logs(view)

	var summary string
	if logsSummarize && view.Count() > 0 {
		runWithSpinner(a.errOut, "Summarizing activity...", func() {
			summary = view.Summarize(ctx, a.generator)
		})
		text += "\n" + summary + "\n"
	}

	err = a.emit(text, logsOutput{Entries: view.Items(), Summary: summary})
	return err
}
