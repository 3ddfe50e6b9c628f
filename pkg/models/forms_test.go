package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleInputValidate(t *testing.T) {
	valid := ArticleInput{
		Title:         "Go generics in practice",
		Slug:          "go-generics",
		Category:      "Technology",
		PublishedDate: "2024-08-05",
		Author:        "Alex",
		ImageURL:      "https://img.example.com/a.png",
		Summary:       "A tour.",
	}
	require.NoError(t, valid.Validate())

	missing := valid
	missing.Slug = ""
	missing.Author = "  "
	err := missing.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "author, slug")

	// href is optional
	noHref := valid
	noHref.Href = ""
	require.NoError(t, noHref.Validate())
}

func TestExperienceInputNormalize(t *testing.T) {
	in := ExperienceInput{
		Title:       "Engineer",
		Description: []string{"Built things", "  ", ""},
		Skills:      []string{"", "Go"},
		Images:      []ImageEntry{{ImageURL: ""}, {ImageURL: "https://img/1.png"}},
	}

	out := in.Normalize()
	assert.Equal(t, []string{"Built things"}, out.Description)
	assert.Equal(t, []string{"Go"}, out.Skills)
	assert.Equal(t, []ImageEntry{{ImageURL: "https://img/1.png"}}, out.Images)

	// the input is left untouched
	assert.Len(t, in.Description, 3)
}

func TestExperienceInputValidate(t *testing.T) {
	in := ExperienceInput{
		Title:       "Engineer",
		Company:     "Acme",
		DateRange:   "2020 - 2023",
		Type:        "Full-time",
		TypeTime:    "Remote",
		Description: []string{" "},
	}
	err := in.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "description")

	in.Description = []string{"Did work"}
	require.NoError(t, in.Validate())
}

func TestSkillFormDefaultsProficiency(t *testing.T) {
	skill := Skill{
		ID:   "s1",
		Name: "Backend",
		Icon: "dns",
		Skills: []SkillItem{
			{Name: "Go", IconURL: "https://icons/go.svg", Proficiencies: []Proficiency{{Percent: 90}}},
			{Name: "Rust"},
		},
	}

	form := SkillForm(skill)
	require.Len(t, form.Skills, 2)
	assert.Equal(t, 90, form.Skills[0].Percent())
	assert.Equal(t, []Proficiency{{Percent: 0}}, form.Skills[1].Proficiencies)
}

func TestSkillInputNormalizeAndValidate(t *testing.T) {
	in := SkillInput{
		Name: "Backend",
		Icon: "dns",
		Skills: []SkillItem{
			{Name: "Go", Proficiencies: []Proficiency{{Percent: 80}, {Percent: 10}}},
			{Name: "SQL"},
		},
	}

	out := in.Normalize()
	assert.Equal(t, []Proficiency{{Percent: 80}}, out.Skills[0].Proficiencies)
	assert.Equal(t, []Proficiency{{Percent: 0}}, out.Skills[1].Proficiencies)
	require.NoError(t, out.Validate())

	out.Skills[0].Proficiencies[0].Percent = 140
	require.Error(t, out.Validate())
}

func TestLoadForm(t *testing.T) {
	tmpDir := t.TempDir()

	yamlPath := filepath.Join(tmpDir, "article.yaml")
	err := os.WriteFile(yamlPath, []byte("title: Hello\nslug: hello\nis_new: true\n"), 0600)
	require.NoError(t, err)

	var a ArticleInput
	require.NoError(t, LoadForm(yamlPath, &a))
	assert.Equal(t, "Hello", a.Title)
	assert.True(t, a.IsNew)

	jsonPath := filepath.Join(tmpDir, "skill.json")
	err = os.WriteFile(jsonPath, []byte(`{"name":"Cloud","icon":"cloud","skills":[{"name":"AWS","icon_url":"","proficiencies":[{"percent":70}]}]}`), 0600)
	require.NoError(t, err)

	var s SkillInput
	require.NoError(t, LoadForm(jsonPath, &s))
	assert.Equal(t, "Cloud", s.Name)
	require.Len(t, s.Skills, 1)
	assert.Equal(t, 70, s.Skills[0].Percent())

	require.Error(t, LoadForm(filepath.Join(tmpDir, "missing.yaml"), &a))
}

func TestStatsTotal(t *testing.T) {
	s := Stats{Projects: 1, Articles: 2, Experiences: 3, Skills: 4}
	assert.Equal(t, 10, s.Total())
}
