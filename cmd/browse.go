package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/faftech/portfolio-admin/pkg/render"
	"github.com/faftech/portfolio-admin/pkg/views"
)

//nolint:gochecknoglobals // Cobra boilerplate
var achievementType string

//nolint:gochecknoglobals // Cobra boilerplate
var describeTags []string

//nolint:gochecknoglobals // Cobra boilerplate
var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Browse projects and draft project descriptions",
}

//nolint:gochecknoglobals // Cobra boilerplate
var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	Args:  cobra.NoArgs,
	RunE:  withApp(runProjectsList),
}

//nolint:gochecknoglobals // Cobra boilerplate
var projectsGetCmd = &cobra.Command{
	Use:   "get <slug>",
	Short: "Show a single project",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(runProjectsGet),
}

//nolint:gochecknoglobals // Cobra boilerplate
var projectsDescribeCmd = &cobra.Command{
	Use:   "describe <title>",
	Short: "Draft a project description with the AI provider",
	Long: `Draft a 100-150 word description for a project from its title using the
configured AI provider. Without an API key a short notice is printed instead.

Example:
  portfolio-admin projects describe "NeuralPath AI" --tag ai-core --tag search`,
	Args: cobra.ExactArgs(1),
	RunE: withApp(runProjectsDescribe),
}

//nolint:gochecknoglobals // Cobra boilerplate
var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List achievements, optionally filtered by type",
	Long: `List achievements. --type narrows the list to one of certificate, award,
publication, patent or conference; "all" shows everything.`,
	Args: cobra.NoArgs,
	RunE: withApp(runAchievements),
}

//nolint:gochecknoglobals // Cobra boilerplate
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the owner profile",
	Args:  cobra.NoArgs,
	RunE:  withApp(runProfile),
}

//nolint:gochecknoglobals // Cobra boilerplate
var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Show contact details and social links",
	Args:  cobra.NoArgs,
	RunE:  withApp(runContact),
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(projectsCmd)
	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsGetCmd)
	projectsCmd.AddCommand(projectsDescribeCmd)
	projectsDescribeCmd.Flags().StringArrayVar(&describeTags, "tag", nil, "Tag to attach to the draft (repeatable)")

	rootCmd.AddCommand(achievementsCmd)
	achievementsCmd.Flags().StringVar(&achievementType, "type", views.FilterAll, "Achievement type to show")

	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(contactCmd)
}

func runProjectsList(ctx context.Context, a *app, cmd *cobra.Command, args []string) (err error) {
	view := views.NewProjectsView(a.client, a.logger)
	view.Load(ctx)

	err = a.emit(a.renderer.Projects(view), view.Items())
	return err
}

func runProjectsGet(ctx context.Context, a *app, cmd *cobra.Command, args []string) (err error) {
	view := views.NewProjectView(a.client, args[0], a.logger)
	view.Load(ctx)

	project := view.Value()
	text := a.renderer.Project(project)
	if !view.Loaded() || (project.ID == "" && project.Slug == "") {
		text = a.renderer.Unavailable("project")
	}

	err = a.emit(text, project)
	return err
}

type draftOutput struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Tags        []string `json:"tags" yaml:"tags"`
}

func runProjectsDescribe(ctx context.Context, a *app, cmd *cobra.Command, args []string) (err error) {
	editor := views.NewProjectEditor(args[0], a.generator, a.logger)
	for _, tag := range describeTags {
		editor.AddTag(tag)
	}

	runWithSpinner(a.errOut, "Drafting description...", func() {
		editor.GenerateDescription(ctx)
	})

	var sb strings.Builder
	sb.WriteString("# " + editor.Title + "\n\n")
	sb.WriteString(editor.Description + "\n")
	if len(editor.Tags) > 0 {
		sb.WriteString("\n`" + strings.Join(editor.Tags, "` `") + "`\n")
	}

	text, mdErr := render.Markdown(sb.String(), 80)
	if mdErr != nil {
		a.logger.Warn("markdown rendering failed", zap.Error(mdErr))
		text = sb.String()
	}

	err = a.emit(text, draftOutput{Title: editor.Title, Description: editor.Description, Tags: editor.Tags})
	return err
}

func runAchievements(ctx context.Context, a *app, cmd *cobra.Command, args []string) (err error) {
	view := views.NewAchievementsView(a.client, a.logger)

	err = view.SetFilter(achievementType)
	if err != nil {
		return err
	}

	view.Load(ctx)

	err = a.emit(a.renderer.Achievements(view), view.Visible())
	return err
}

func runProfile(ctx context.Context, a *app, cmd *cobra.Command, args []string) (err error) {
	view := views.NewProfileView(a.client, a.logger)
	view.Load(ctx)

	text := a.renderer.Profile(view.Value())
	if !view.Loaded() {
		text = a.renderer.Unavailable("profile")
	}

	err = a.emit(text, view.Value())
	return err
}

func runContact(ctx context.Context, a *app, cmd *cobra.Command, args []string) (err error) {
	view := views.NewContactView(a.client, a.logger)
	view.Load(ctx)

	text := a.renderer.Contact(view.Value())
	if !view.Loaded() {
		text = a.renderer.Unavailable("contact details")
	}

	err = a.emit(text, view.Value())
	return err
}
