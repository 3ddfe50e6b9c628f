package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/faftech/portfolio-admin/pkg/api"
	"github.com/faftech/portfolio-admin/pkg/models"
	"github.com/faftech/portfolio-admin/pkg/render"
	"github.com/faftech/portfolio-admin/pkg/views"
)

// textField binds a string flag to one form field.
type textField[F any] struct {
	name  string
	usage string
	field func(form *F) (field *string)
}

// resourceCommand builds the list/create/update/delete tree for one
// editable resource.
type resourceCommand[T any, F any] struct {
	use     string
	noun    string
	example string

	newEditor func(client *api.Client, deps views.Deps) (editor *views.Editor[T, F])
	render    func(r *render.Renderer, view render.Lister[T]) (out string)
	id        func(item T) (id string)

	fields     []textField[F]
	bindExtra  func(cmd *cobra.Command)
	applyExtra func(cmd *cobra.Command, form *F) (err error)
}

func (rc resourceCommand[T, F]) build() (parent *cobra.Command) {
	parent = &cobra.Command{
		Use:   rc.use,
		Short: fmt.Sprintf("List, create, update and delete %s", rc.use),
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all " + rc.use,
		Args:  cobra.NoArgs,
		RunE:  withApp(rc.runList),
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new " + rc.noun,
		Long: fmt.Sprintf(`Create a new %s from a YAML or JSON form file and/or field flags.
Flags override values from the file.

Example:
%s`, rc.noun, rc.example),
		Args: cobra.NoArgs,
		RunE: withApp(rc.runCreate),
	}

	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an existing " + rc.noun,
		Long: fmt.Sprintf(`Update the %s with the given id. The form starts from the current
values; a form file and field flags override only what they set.`, rc.noun),
		Args: cobra.ExactArgs(1),
		RunE: withApp(rc.runUpdate),
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a " + rc.noun,
		Args:  cobra.ExactArgs(1),
		RunE:  withApp(rc.runDelete),
	}
	deleteCmd.Flags().Bool("yes", false, "Delete without asking for confirmation")

	for _, formCmd := range []*cobra.Command{createCmd, updateCmd} {
		formCmd.Flags().String("file", "", "YAML or JSON form file")
		for _, f := range rc.fields {
			formCmd.Flags().String(f.name, "", f.usage)
		}
		if rc.bindExtra != nil {
			rc.bindExtra(formCmd)
		}
	}

	parent.AddCommand(listCmd, createCmd, updateCmd, deleteCmd)
	return parent
}

func (rc resourceCommand[T, F]) runList(ctx context.Context, a *app, cmd *cobra.Command, args []string) (err error) {
	editor := rc.newEditor(a.client, a.deps(false))
	editor.Load(ctx)

	err = a.emit(rc.render(a.renderer, editor), editor.Items())
	return err
}

func (rc resourceCommand[T, F]) runCreate(ctx context.Context, a *app, cmd *cobra.Command, args []string) (err error) {
	editor := rc.newEditor(a.client, a.deps(false))
	editor.OpenAdd()

	err = rc.submit(ctx, a, cmd, editor)
	return err
}

func (rc resourceCommand[T, F]) runUpdate(ctx context.Context, a *app, cmd *cobra.Command, args []string) (err error) {
	editor := rc.newEditor(a.client, a.deps(false))
	editor.Load(ctx)
	if editor.Failed() {
		err = errors.Wrapf(editor.Err(), "failed to load %s", rc.use)
		return err
	}

	id := args[0]
	found := false
	for _, item := range editor.Items() {
		if rc.id(item) == id {
			editor.OpenEdit(item)
			found = true
			break
		}
	}
	if !found {
		err = errors.Errorf("no %s with id %q", rc.noun, id)
		return err
	}

	err = rc.submit(ctx, a, cmd, editor)
	return err
}

// submit applies the form file and flags to the open form and saves it.
func (rc resourceCommand[T, F]) submit(ctx context.Context, a *app, cmd *cobra.Command, editor *views.Editor[T, F]) (err error) {
	form := editor.Form()

	file, _ := cmd.Flags().GetString("file")
	if file != "" {
		err = models.LoadForm(file, &form)
		if err != nil {
			return err
		}
	}

	for _, f := range rc.fields {
		if !cmd.Flags().Changed(f.name) {
			continue
		}
		var value string
		value, err = cmd.Flags().GetString(f.name)
		if err != nil {
			return err
		}
		*f.field(&form) = value
	}

	if rc.applyExtra != nil {
		err = rc.applyExtra(cmd, &form)
		if err != nil {
			return err
		}
	}

	editor.SetForm(form)
	err = editor.Submit(ctx)
	if err != nil {
		return err
	}

	var saved interface{}
	if raw := editor.LastResult(); len(raw) > 0 {
		_ = json.Unmarshal(raw, &saved)
	}

	text := fmt.Sprintf("Saved %s\n\n%s", rc.noun, rc.render(a.renderer, editor))
	err = a.emit(text, saved)
	return err
}

func (rc resourceCommand[T, F]) runDelete(ctx context.Context, a *app, cmd *cobra.Command, args []string) (err error) {
	yes, _ := cmd.Flags().GetBool("yes")
	editor := rc.newEditor(a.client, a.deps(yes))
	editor.Load(ctx)

	var deleted bool
	deleted, err = editor.Delete(ctx, args[0])
	if err != nil {
		return err
	}

	if !deleted {
		fmt.Fprintln(a.errOut, "Cancelled")
		return err
	}

	fmt.Fprintf(a.errOut, "Deleted %s %s\n", rc.noun, args[0])
	return err
}

// parseSkillItem reads "Name=percent" or "Name=percent=iconURL".
func parseSkillItem(value string) (item models.SkillItem, err error) {
	parts := strings.SplitN(value, "=", 3)
	item.Name = strings.TrimSpace(parts[0])
	if item.Name == "" {
		err = errors.Errorf("skill %q has no name", value)
		return item, err
	}

	percent := 0
	if len(parts) > 1 {
		percent, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			err = errors.Wrapf(err, "skill %q has an invalid percent", value)
			return item, err
		}
	}
	item.Proficiencies = []models.Proficiency{{Percent: percent}}

	if len(parts) > 2 {
		item.IconURL = strings.TrimSpace(parts[2])
	}

	return item, err
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(articlesCommand().build())
	rootCmd.AddCommand(experiencesCommand().build())
	rootCmd.AddCommand(skillsCommand().build())
}

func articlesCommand() (rc resourceCommand[models.Article, models.ArticleInput]) {
	rc = resourceCommand[models.Article, models.ArticleInput]{
		use:  "articles",
		noun: "article",
		example: `  portfolio-admin articles create --file article.yaml
  portfolio-admin articles create --title "Go Generics" --slug go-generics \
    --category Engineering --published-date 2026-01-10 --author Alex \
    --image-url https://example.com/g.png --summary "A tour" --new`,
		newEditor: views.NewArticleEditor,
		render:    (*render.Renderer).Articles,
		id:        func(item models.Article) (id string) { return item.ID },
		fields: []textField[models.ArticleInput]{
			{"title", "Article title", func(f *models.ArticleInput) (field *string) { return &f.Title }},
			{"slug", "URL slug", func(f *models.ArticleInput) (field *string) { return &f.Slug }},
			{"href", "External link", func(f *models.ArticleInput) (field *string) { return &f.Href }},
			{"image-url", "Cover image URL", func(f *models.ArticleInput) (field *string) { return &f.ImageURL }},
			{"published-date", "Publication date", func(f *models.ArticleInput) (field *string) { return &f.PublishedDate }},
			{"author", "Author name", func(f *models.ArticleInput) (field *string) { return &f.Author }},
			{"summary", "Short summary", func(f *models.ArticleInput) (field *string) { return &f.Summary }},
			{"category", "Category", func(f *models.ArticleInput) (field *string) { return &f.Category }},
		},
		bindExtra: func(cmd *cobra.Command) {
			cmd.Flags().Bool("new", false, "Mark the article as new")
		},
		applyExtra: func(cmd *cobra.Command, form *models.ArticleInput) (err error) {
			if cmd.Flags().Changed("new") {
				form.IsNew, err = cmd.Flags().GetBool("new")
			}
			return err
		},
	}
	return rc
}

func experiencesCommand() (rc resourceCommand[models.Experience, models.ExperienceInput]) {
	rc = resourceCommand[models.Experience, models.ExperienceInput]{
		use:  "experiences",
		noun: "experience",
		example: `  portfolio-admin experiences create --file experience.yaml
  portfolio-admin experiences create --title "Backend Engineer" --company Acme \
    --date-range "2022 - Present" --type Remote --type-time "Full Time" \
    --description "Built the billing service" --skill Go --skill Postgres`,
		newEditor: views.NewExperienceEditor,
		render:    (*render.Renderer).Experiences,
		id:        func(item models.Experience) (id string) { return item.ID },
		fields: []textField[models.ExperienceInput]{
			{"title", "Job title", func(f *models.ExperienceInput) (field *string) { return &f.Title }},
			{"company", "Company name", func(f *models.ExperienceInput) (field *string) { return &f.Company }},
			{"date-range", "Date range, e.g. 2022 - Present", func(f *models.ExperienceInput) (field *string) { return &f.DateRange }},
			{"type", "Work type, e.g. Remote", func(f *models.ExperienceInput) (field *string) { return &f.Type }},
			{"type-time", "Time commitment, e.g. Full Time", func(f *models.ExperienceInput) (field *string) { return &f.TypeTime }},
		},
		bindExtra: func(cmd *cobra.Command) {
			cmd.Flags().StringArray("description", nil, "Description line (repeatable, replaces existing lines)")
			cmd.Flags().StringArray("skill", nil, "Skill used (repeatable, replaces existing skills)")
			cmd.Flags().StringArray("image", nil, "Image URL (repeatable, replaces existing images)")
		},
		applyExtra: func(cmd *cobra.Command, form *models.ExperienceInput) (err error) {
			if cmd.Flags().Changed("description") {
				form.Description, err = cmd.Flags().GetStringArray("description")
				if err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("skill") {
				form.Skills, err = cmd.Flags().GetStringArray("skill")
				if err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("image") {
				var urls []string
				urls, err = cmd.Flags().GetStringArray("image")
				if err != nil {
					return err
				}
				form.Images = make([]models.ImageEntry, 0, len(urls))
				for _, u := range urls {
					form.Images = append(form.Images, models.ImageEntry{ImageURL: u})
				}
			}
			return err
		},
	}
	return rc
}

func skillsCommand() (rc resourceCommand[models.Skill, models.SkillInput]) {
	rc = resourceCommand[models.Skill, models.SkillInput]{
		use:  "skills",
		noun: "skill category",
		example: `  portfolio-admin skills create --file skills.yaml
  portfolio-admin skills create --name Backend --icon server --skill Go=90 --skill Postgres=75`,
		newEditor: views.NewSkillEditor,
		render:    (*render.Renderer).Skills,
		id:        func(item models.Skill) (id string) { return item.ID },
		fields: []textField[models.SkillInput]{
			{"name", "Category name", func(f *models.SkillInput) (field *string) { return &f.Name }},
			{"icon", "Category icon", func(f *models.SkillInput) (field *string) { return &f.Icon }},
		},
		bindExtra: func(cmd *cobra.Command) {
			cmd.Flags().StringArray("skill", nil, "Skill as Name=percent[=iconURL] (repeatable, replaces existing skills)")
		},
		applyExtra: func(cmd *cobra.Command, form *models.SkillInput) (err error) {
			if !cmd.Flags().Changed("skill") {
				return err
			}

			var values []string
			values, err = cmd.Flags().GetStringArray("skill")
			if err != nil {
				return err
			}

			form.Skills = make([]models.SkillItem, 0, len(values))
			for _, value := range values {
				var item models.SkillItem
				item, err = parseSkillItem(value)
				if err != nil {
					return err
				}
				form.Skills = append(form.Skills, item)
			}
			return err
		},
	}
	return rc
}
