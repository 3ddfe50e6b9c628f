package render

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/faftech/portfolio-admin/pkg/activity"
	"github.com/faftech/portfolio-admin/pkg/api"
	"github.com/faftech/portfolio-admin/internal/fakebackend"
	"github.com/faftech/portfolio-admin/pkg/models"
	"github.com/faftech/portfolio-admin/pkg/views"
)

func TestEmptyArticlesRenderPlaceholder(t *testing.T) {
	backend := fakebackend.New()
	defer backend.Close()
	backend.SetCollection("articles", []models.Article{})

	editor := views.NewArticleEditor(api.NewClient(backend.URL), views.Deps{})
	r := New()

	loading := r.Articles(editor)
	assert.Contains(t, loading, "... TOTAL")
	assert.Contains(t, loading, "Loading articles...")

	editor.Load(context.Background())
	out := r.Articles(editor)
	assert.Contains(t, out, "0 TOTAL")
	assert.Contains(t, out, "No articles found")
}

func TestArticlesRenderCountAndRows(t *testing.T) {
	backend := fakebackend.New()
	defer backend.Close()
	backend.SetCollection("articles", []models.Article{
		{ID: "a1", Title: "Generics", Author: "Alex", IsNew: true},
		{ID: "a2", Title: "Channels", Author: "Sam"},
	})

	editor := views.NewArticleEditor(api.NewClient(backend.URL), views.Deps{})
	editor.Load(context.Background())

	out := New().Articles(editor)
	assert.Contains(t, out, "2 TOTAL")
	assert.Contains(t, out, "Generics")
	assert.Contains(t, out, "Channels")
	assert.NotContains(t, out, "No articles found")
}

func TestSkillsRenderPercent(t *testing.T) {
	backend := fakebackend.New()
	defer backend.Close()
	backend.SetCollection("skills", []models.Skill{{
		ID:   "s1",
		Name: "Backend",
		Skills: []models.SkillItem{
			{Name: "Go", Proficiencies: []models.Proficiency{{Percent: 90}}},
		},
	}})

	editor := views.NewSkillEditor(api.NewClient(backend.URL), views.Deps{})
	editor.Load(context.Background())

	out := New().Skills(editor)
	assert.Contains(t, out, "1 TOTAL")
	assert.Contains(t, out, "Go 90%")
}

func TestAchievementsRenderFilter(t *testing.T) {
	backend := fakebackend.New()
	defer backend.Close()
	backend.SetCollection("achievements", []models.Achievement{
		{ID: "1", Title: "Best App", Type: models.AchievementAward},
		{ID: "2", Title: "CKA", Type: models.AchievementCertificate},
	})

	view := views.NewAchievementsView(api.NewClient(backend.URL), nil)
	view.Load(context.Background())
	require.NoError(t, view.SetFilter("award"))

	out := New().Achievements(view)
	assert.Contains(t, out, "1 TOTAL")
	assert.Contains(t, out, "[Award]")
	assert.Contains(t, out, "Best App")
	assert.NotContains(t, out, "CKA")

	require.NoError(t, view.SetFilter("patent"))
	assert.Contains(t, New().Achievements(view), "No achievements found")
}

type staticLog []activity.Entry

func (s staticLog) Recent(context.Context, int) (entries []activity.Entry, err error) {
	entries = s
	return entries, err
}

func TestDashboardRender(t *testing.T) {
	backend := fakebackend.New()
	defer backend.Close()
	backend.SetCollection("projects", []models.Project{{ID: "p1"}, {ID: "p2"}})
	backend.SetCollection("articles", []models.Article{{ID: "a1"}})
	backend.SetCollection("experiences", []models.Experience{})
	backend.SetCollection("skills", []models.Skill{{ID: "s1"}})

	log := staticLog{{Action: "Created Article", Resource: "go-generics", Status: activity.StatusSuccess, CreatedAt: time.Now()}}
	view := views.NewDashboardView(api.NewClient(backend.URL), log, nil)
	view.Load(context.Background())

	out := New().Dashboard(view)
	assert.Contains(t, out, "4 TOTAL")
	assert.Contains(t, out, "PROJECTS")
	assert.Contains(t, out, "Created Article")
	assert.Contains(t, out, "SUCCESS")
}

func TestLogsRender(t *testing.T) {
	log := staticLog{
		{Action: "Deleted Skill Category", Resource: "Cloud", Admin: "admin", Status: activity.StatusBlocked, CreatedAt: time.Now().Add(-2 * time.Hour)},
	}
	view := views.NewLogsView(log, 10, nil)
	view.Load(context.Background())

	out := New().Logs(view)
	assert.Contains(t, out, "1 ENTRIES")
	assert.Contains(t, out, "BLOCKED")
	assert.Contains(t, out, "2 hours ago")
}

func TestProfileAndContactRender(t *testing.T) {
	r := New()

	out := r.Profile(models.Profile{Name: "Alex", Email: "alex@example.com"})
	assert.Contains(t, out, "Alex")
	assert.Contains(t, out, "alex@example.com")
	assert.NotContains(t, out, "Phone", "empty fields are skipped")

	out = r.Contact(models.Contact{
		Contact:     models.ContactDetails{WhatsappURL: "https://wa.me/1"},
		SocialLinks: []models.SocialLink{{Platform: "GitHub", URL: "https://github.com/alex"}},
	})
	assert.Contains(t, out, "https://wa.me/1")
	assert.Contains(t, out, "GitHub")
}

func TestAgo(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "just now", Ago(now.Add(-10*time.Second), now))
	assert.Equal(t, "1 min ago", Ago(now.Add(-time.Minute), now))
	assert.Equal(t, "2 mins ago", Ago(now.Add(-2*time.Minute), now))
	assert.Equal(t, "4 hours ago", Ago(now.Add(-4*time.Hour), now))
	assert.Equal(t, "1 day ago", Ago(now.Add(-25*time.Hour), now))
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, format)

	format, err = ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, format)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	articles := []models.Article{{ID: "a1", Title: "Generics"}}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatJSON, articles))
	assert.Contains(t, buf.String(), `"title": "Generics"`)

	buf.Reset()
	require.NoError(t, Encode(&buf, FormatYAML, articles))
	var decoded []models.Article
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, articles[0].Title, decoded[0].Title)

	assert.Error(t, Encode(&buf, FormatText, articles))
}

func TestMarkdown(t *testing.T) {
	out, err := Markdown("NeuralPath redefines **search**.", 60)
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "NeuralPath"))
}
