package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/faftech/portfolio-admin/pkg/models"
)

// GetProjects lists all projects.
func (c *Client) GetProjects(ctx context.Context) (projects []models.Project, err error) {
	err = c.getData(ctx, "get projects", "/projects", &projects)
	return projects, err
}

// GetProjectBySlug fetches a single project by slug.
func (c *Client) GetProjectBySlug(ctx context.Context, slug string) (project models.Project, err error) {
	err = c.getData(ctx, "get project", "/projects?slug="+url.QueryEscape(slug), &project)
	return project, err
}

// GetArticles lists all articles.
func (c *Client) GetArticles(ctx context.Context) (articles []models.Article, err error) {
	err = c.getData(ctx, "get articles", "/articles", &articles)
	return articles, err
}

// CreateArticle creates an article.
func (c *Client) CreateArticle(ctx context.Context, input models.ArticleInput, token string) (raw json.RawMessage, err error) {
	raw, err = c.mutate(ctx, "create article", http.MethodPost, "/admin/articles", token, input)
	return raw, err
}

// UpdateArticle replaces the article with the given id.
func (c *Client) UpdateArticle(ctx context.Context, id string, input models.ArticleInput, token string) (raw json.RawMessage, err error) {
	raw, err = c.mutate(ctx, "update article", http.MethodPut, "/admin/articles/"+url.PathEscape(id), token, input)
	return raw, err
}

// DeleteArticle deletes the article with the given id.
func (c *Client) DeleteArticle(ctx context.Context, id, token string) (err error) {
	_, err = c.mutate(ctx, "delete article", http.MethodDelete, "/admin/articles/"+url.PathEscape(id), token, nil)
	return err
}

// GetExperiences lists all experiences.
func (c *Client) GetExperiences(ctx context.Context) (experiences []models.Experience, err error) {
	err = c.getData(ctx, "get experiences", "/experiences", &experiences)
	return experiences, err
}

// CreateExperience creates an experience.
func (c *Client) CreateExperience(ctx context.Context, input models.ExperienceInput, token string) (raw json.RawMessage, err error) {
	raw, err = c.mutate(ctx, "create experience", http.MethodPost, "/admin/experiences", token, input)
	return raw, err
}

// UpdateExperience replaces the experience with the given id.
func (c *Client) UpdateExperience(ctx context.Context, id string, input models.ExperienceInput, token string) (raw json.RawMessage, err error) {
	raw, err = c.mutate(ctx, "update experience", http.MethodPut, "/admin/experiences/"+url.PathEscape(id), token, input)
	return raw, err
}

// DeleteExperience deletes the experience with the given id.
func (c *Client) DeleteExperience(ctx context.Context, id, token string) (err error) {
	_, err = c.mutate(ctx, "delete experience", http.MethodDelete, "/admin/experiences/"+url.PathEscape(id), token, nil)
	return err
}

// GetSkills lists all skill categories.
func (c *Client) GetSkills(ctx context.Context) (skills []models.Skill, err error) {
	err = c.getData(ctx, "get skills", "/skills", &skills)
	return skills, err
}

// CreateSkill creates a skill category.
func (c *Client) CreateSkill(ctx context.Context, input models.SkillInput, token string) (raw json.RawMessage, err error) {
	raw, err = c.mutate(ctx, "create skill", http.MethodPost, "/admin/skills", token, input)
	return raw, err
}

// UpdateSkill replaces the skill category with the given id.
func (c *Client) UpdateSkill(ctx context.Context, id string, input models.SkillInput, token string) (raw json.RawMessage, err error) {
	raw, err = c.mutate(ctx, "update skill", http.MethodPut, "/admin/skills/"+url.PathEscape(id), token, input)
	return raw, err
}

// DeleteSkill deletes the skill category with the given id.
func (c *Client) DeleteSkill(ctx context.Context, id, token string) (err error) {
	_, err = c.mutate(ctx, "delete skill", http.MethodDelete, "/admin/skills/"+url.PathEscape(id), token, nil)
	return err
}

// GetProfile fetches the owner profile.
func (c *Client) GetProfile(ctx context.Context) (profile models.Profile, err error) {
	err = c.getData(ctx, "get profile", "/profile", &profile)
	return profile, err
}

// GetContact fetches contact details and social links.
func (c *Client) GetContact(ctx context.Context) (contact models.Contact, err error) {
	err = c.getData(ctx, "get contact", "/contact", &contact)
	return contact, err
}

// GetAchievements lists all achievements.
func (c *Client) GetAchievements(ctx context.Context) (achievements []models.Achievement, err error) {
	err = c.getData(ctx, "get achievements", "/achievements", &achievements)
	return achievements, err
}
