package models

import (
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ArticleInput is the request body for creating or updating an article.
type ArticleInput struct {
	Title         string `json:"title" yaml:"title"`
	Slug          string `json:"slug" yaml:"slug"`
	Href          string `json:"href" yaml:"href"`
	ImageURL      string `json:"image_url" yaml:"image_url"`
	PublishedDate string `json:"published_date" yaml:"published_date"`
	Author        string `json:"author" yaml:"author"`
	Summary       string `json:"summary" yaml:"summary"`
	Category      string `json:"category" yaml:"category"`
	IsNew         bool   `json:"is_new" yaml:"is_new"`
}

// ExperienceInput is the request body for creating or updating an experience.
type ExperienceInput struct {
	Title       string       `json:"title" yaml:"title"`
	Company     string       `json:"company" yaml:"company"`
	DateRange   string       `json:"date_range" yaml:"date_range"`
	Type        string       `json:"type" yaml:"type"`
	TypeTime    string       `json:"type_time" yaml:"type_time"`
	Description []string     `json:"description" yaml:"description"`
	Skills      []string     `json:"skills" yaml:"skills"`
	Images      []ImageEntry `json:"images" yaml:"images"`
}

// SkillInput is the request body for creating or updating a skill category.
type SkillInput struct {
	Name   string      `json:"name" yaml:"name"`
	Icon   string      `json:"icon" yaml:"icon"`
	Skills []SkillItem `json:"skills" yaml:"skills"`
}

// ArticleForm returns the form mirror of an article.
func ArticleForm(a Article) (input ArticleInput) {
	input = ArticleInput{
		Title:         a.Title,
		Slug:          a.Slug,
		Href:          a.Href,
		ImageURL:      a.ImageURL,
		PublishedDate: a.PublishedDate,
		Author:        a.Author,
		Summary:       a.Summary,
		Category:      a.Category,
		IsNew:         a.IsNew,
	}
	return input
}

// ExperienceForm returns the form mirror of an experience.
func ExperienceForm(e Experience) (input ExperienceInput) {
	input = ExperienceInput{
		Title:       e.Title,
		Company:     e.Company,
		DateRange:   e.DateRange,
		Type:        e.Type,
		TypeTime:    e.TypeTime,
		Description: append([]string(nil), e.Description...),
		Skills:      append([]string(nil), e.Skills...),
		Images:      append([]ImageEntry(nil), e.Images...),
	}
	return input
}

// SkillForm returns the form mirror of a skill category. Items without a
// proficiency get a single zero entry.
func SkillForm(s Skill) (input SkillInput) {
	input = SkillInput{
		Name:   s.Name,
		Icon:   s.Icon,
		Skills: make([]SkillItem, 0, len(s.Skills)),
	}
	for _, item := range s.Skills {
		profs := item.Proficiencies
		if len(profs) == 0 {
			profs = []Proficiency{{Percent: 0}}
		}
		input.Skills = append(input.Skills, SkillItem{
			Name:          item.Name,
			IconURL:       item.IconURL,
			Proficiencies: append([]Proficiency(nil), profs...),
		})
	}
	return input
}

// Validate checks the fields an article form requires.
func (a ArticleInput) Validate() (err error) {
	err = requireFields(map[string]string{
		"title":          a.Title,
		"slug":           a.Slug,
		"category":       a.Category,
		"published_date": a.PublishedDate,
		"author":         a.Author,
		"image_url":      a.ImageURL,
		"summary":        a.Summary,
	})
	return err
}

// Normalize drops blank description lines, skills and images.
func (e ExperienceInput) Normalize() (normalized ExperienceInput) {
	normalized = e
	normalized.Description = nonBlank(e.Description)
	normalized.Skills = nonBlank(e.Skills)
	normalized.Images = make([]ImageEntry, 0, len(e.Images))
	for _, img := range e.Images {
		if strings.TrimSpace(img.ImageURL) != "" {
			normalized.Images = append(normalized.Images, img)
		}
	}
	return normalized
}

// Validate checks the fields an experience form requires.
func (e ExperienceInput) Validate() (err error) {
	err = requireFields(map[string]string{
		"title":      e.Title,
		"company":    e.Company,
		"date_range": e.DateRange,
		"type":       e.Type,
		"type_time":  e.TypeTime,
	})
	if err != nil {
		return err
	}

	if len(nonBlank(e.Description)) == 0 {
		err = errors.New("description is required")
		return err
	}

	return err
}

// Normalize keeps exactly one proficiency per skill item.
func (s SkillInput) Normalize() (normalized SkillInput) {
	normalized = s
	normalized.Skills = make([]SkillItem, 0, len(s.Skills))
	for _, item := range s.Skills {
		normalized.Skills = append(normalized.Skills, SkillItem{
			Name:          item.Name,
			IconURL:       item.IconURL,
			Proficiencies: []Proficiency{{Percent: item.Percent()}},
		})
	}
	return normalized
}

// Validate checks the fields a skill form requires.
func (s SkillInput) Validate() (err error) {
	err = requireFields(map[string]string{
		"name": s.Name,
		"icon": s.Icon,
	})
	if err != nil {
		return err
	}

	for i, item := range s.Skills {
		if strings.TrimSpace(item.Name) == "" {
			err = errors.Errorf("skill at index %d missing name", i)
			return err
		}
		p := item.Percent()
		if p < 0 || p > 100 {
			err = errors.Errorf("skill %s: percent %d out of range 0-100", item.Name, p)
			return err
		}
	}

	return err
}

// LoadForm reads a YAML or JSON form file into v.
func LoadForm(path string, v interface{}) (err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read form file: %s", path)
		return err
	}

	// JSON is valid YAML, so one decoder covers both.
	err = yaml.Unmarshal(data, v)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse form file: %s", path)
		return err
	}

	return err
}

func requireFields(fields map[string]string) (err error) {
	missing := make([]string, 0)
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return err
	}

	sort.Strings(missing)
	err = errors.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	return err
}

func nonBlank(values []string) (result []string) {
	result = make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			result = append(result, v)
		}
	}
	return result
}
