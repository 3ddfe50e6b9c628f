package views

import (
	"context"
	"encoding/json"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/faftech/portfolio-admin/pkg/api"
	"github.com/faftech/portfolio-admin/pkg/models"
)

// ArticleEditor edits articles.
type ArticleEditor = Editor[models.Article, models.ArticleInput]

// ExperienceEditor edits experiences.
type ExperienceEditor = Editor[models.Experience, models.ExperienceInput]

// SkillEditor edits skill categories.
type SkillEditor = Editor[models.Skill, models.SkillInput]

// NewArticleEditor creates the articles editor.
func NewArticleEditor(client *api.Client, deps Deps) (editor *ArticleEditor) {
	editor = NewEditor[models.Article, models.ArticleInput](articleResource{client: client}, deps)
	return editor
}

// NewExperienceEditor creates the experiences editor.
func NewExperienceEditor(client *api.Client, deps Deps) (editor *ExperienceEditor) {
	editor = NewEditor[models.Experience, models.ExperienceInput](experienceResource{client: client}, deps)
	return editor
}

// NewSkillEditor creates the skills editor.
func NewSkillEditor(client *api.Client, deps Deps) (editor *SkillEditor) {
	editor = NewEditor[models.Skill, models.SkillInput](skillResource{client: client}, deps)
	return editor
}

type articleResource struct {
	client *api.Client
}

func (articleResource) Name() (name string) { return "articles" }
func (articleResource) Noun() (noun string) { return "article" }

func (r articleResource) List(ctx context.Context) (items []models.Article, err error) {
	items, err = r.client.GetArticles(ctx)
	return items, err
}

func (r articleResource) Create(ctx context.Context, form models.ArticleInput, token string) (raw json.RawMessage, err error) {
	raw, err = r.client.CreateArticle(ctx, form, token)
	return raw, err
}

func (r articleResource) Update(ctx context.Context, id string, form models.ArticleInput, token string) (raw json.RawMessage, err error) {
	raw, err = r.client.UpdateArticle(ctx, id, form, token)
	return raw, err
}

func (r articleResource) Delete(ctx context.Context, id, token string) (err error) {
	err = r.client.DeleteArticle(ctx, id, token)
	return err
}

func (articleResource) ID(item models.Article) (id string) { return item.ID }

func (articleResource) Label(item models.Article) (label string) {
	label = firstNonEmpty(item.Slug, item.Title, item.ID)
	return label
}

func (articleResource) Form(item models.Article) (form models.ArticleInput) {
	form = models.ArticleForm(item)
	return form
}

func (articleResource) Blank() (form models.ArticleInput) { return form }

func (articleResource) Prepare(form models.ArticleInput) (prepared models.ArticleInput, err error) {
	prepared = form
	err = prepared.Validate()
	return prepared, err
}

type experienceResource struct {
	client *api.Client
}

func (experienceResource) Name() (name string) { return "experiences" }
func (experienceResource) Noun() (noun string) { return "experience" }

func (r experienceResource) List(ctx context.Context) (items []models.Experience, err error) {
	items, err = r.client.GetExperiences(ctx)
	return items, err
}

func (r experienceResource) Create(ctx context.Context, form models.ExperienceInput, token string) (raw json.RawMessage, err error) {
	raw, err = r.client.CreateExperience(ctx, form, token)
	return raw, err
}

func (r experienceResource) Update(ctx context.Context, id string, form models.ExperienceInput, token string) (raw json.RawMessage, err error) {
	raw, err = r.client.UpdateExperience(ctx, id, form, token)
	return raw, err
}

func (r experienceResource) Delete(ctx context.Context, id, token string) (err error) {
	err = r.client.DeleteExperience(ctx, id, token)
	return err
}

func (experienceResource) ID(item models.Experience) (id string) { return item.ID }

func (experienceResource) Label(item models.Experience) (label string) {
	label = item.Title
	if item.Company != "" {
		label += " @ " + item.Company
	}
	label = firstNonEmpty(label, item.ID)
	return label
}

func (experienceResource) Form(item models.Experience) (form models.ExperienceInput) {
	form = models.ExperienceForm(item)
	return form
}

// Blank starts with one empty description line, as the add form does.
func (experienceResource) Blank() (form models.ExperienceInput) {
	form.Description = []string{""}
	return form
}

func (experienceResource) Prepare(form models.ExperienceInput) (prepared models.ExperienceInput, err error) {
	prepared = form.Normalize()
	err = prepared.Validate()
	return prepared, err
}

type skillResource struct {
	client *api.Client
}

func (skillResource) Name() (name string) { return "skills" }
func (skillResource) Noun() (noun string) { return "skill category" }

func (r skillResource) List(ctx context.Context) (items []models.Skill, err error) {
	items, err = r.client.GetSkills(ctx)
	return items, err
}

func (r skillResource) Create(ctx context.Context, form models.SkillInput, token string) (raw json.RawMessage, err error) {
	raw, err = r.client.CreateSkill(ctx, form, token)
	return raw, err
}

func (r skillResource) Update(ctx context.Context, id string, form models.SkillInput, token string) (raw json.RawMessage, err error) {
	raw, err = r.client.UpdateSkill(ctx, id, form, token)
	return raw, err
}

func (r skillResource) Delete(ctx context.Context, id, token string) (err error) {
	err = r.client.DeleteSkill(ctx, id, token)
	return err
}

func (skillResource) ID(item models.Skill) (id string) { return item.ID }

func (skillResource) Label(item models.Skill) (label string) {
	label = firstNonEmpty(item.Name, item.ID)
	return label
}

func (skillResource) Form(item models.Skill) (form models.SkillInput) {
	form = models.SkillForm(item)
	return form
}

func (skillResource) Blank() (form models.SkillInput) { return form }

func (skillResource) Prepare(form models.SkillInput) (prepared models.SkillInput, err error) {
	prepared = form.Normalize()
	err = prepared.Validate()
	return prepared, err
}

func firstNonEmpty(values ...string) (value string) {
	for _, v := range values {
		if v != "" {
			value = v
			return value
		}
	}
	return value
}

// titleNoun turns "skill category" into "Skill Category".
func titleNoun(noun string) (title string) {
	title = cases.Title(language.English).String(noun)
	return title
}
