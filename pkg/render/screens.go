package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/faftech/portfolio-admin/pkg/activity"
	"github.com/faftech/portfolio-admin/pkg/models"
	"github.com/faftech/portfolio-admin/pkg/views"
)

// Lister is the read side of a list view.
type Lister[T any] interface {
	Name() (name string)
	Items() (items []T)
	Count() (count int)
	Loading() (loading bool)
}

// Renderer renders views with a fixed set of styles.
type Renderer struct {
	styles Styles
	title  cases.Caser
}

// New returns a renderer using DefaultStyles.
func New() (r *Renderer) {
	r = &Renderer{
		styles: DefaultStyles(),
		title:  cases.Title(language.English),
	}
	return r
}

// Header renders a screen title followed by its count badge. The badge
// reads "... TOTAL" while loading.
func (r *Renderer) Header(title string, count int, loading bool, unit string) (out string) {
	if unit == "" {
		unit = "TOTAL"
	}

	badge := strconv.Itoa(count) + " " + unit
	if loading {
		badge = "... " + unit
	}

	out = lipgloss.JoinHorizontal(lipgloss.Center,
		r.styles.Title.Render(title),
		" ",
		r.styles.Badge.Render(badge),
	)
	return out
}

// Placeholder renders the loading or empty line for resource.
func (r *Renderer) Placeholder(resource string, loading bool) (out string) {
	if loading {
		out = r.styles.Muted.Render(fmt.Sprintf("Loading %s...", resource))
		return out
	}
	out = r.styles.Muted.Render(fmt.Sprintf("No %s found", resource))
	return out
}

// Table renders rows under headers.
func (r *Renderer) Table(headers []string, rows [][]string) (out string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.styles.Muted).
		StyleFunc(func(row, _ int) (style lipgloss.Style) {
			if row == table.HeaderRow {
				style = r.styles.Label.Padding(0, 1)
				return style
			}
			style = r.styles.Value.Padding(0, 1)
			return style
		}).
		Headers(headers...).
		Rows(rows...)

	out = t.String()
	return out
}

// List renders a complete list screen: header, then placeholder or table.
func List[T any](r *Renderer, title string, view Lister[T], headers []string, row func(item T) (cells []string)) (out string) {
	var sb strings.Builder

	sb.WriteString(r.Header(title, view.Count(), view.Loading(), ""))
	sb.WriteString("\n\n")

	if view.Loading() || view.Count() == 0 {
		sb.WriteString(r.Placeholder(view.Name(), view.Loading()))
		sb.WriteString("\n")
		out = sb.String()
		return out
	}

	rows := make([][]string, 0, view.Count())
	for _, item := range view.Items() {
		rows = append(rows, row(item))
	}
	sb.WriteString(r.Table(headers, rows))
	sb.WriteString("\n")

	out = sb.String()
	return out
}

// Projects renders the project repository.
func (r *Renderer) Projects(view Lister[models.Project]) (out string) {
	out = List(r, "Project Repository", view,
		[]string{"SLUG", "TITLE", "CATEGORY", "TAGS"},
		func(p models.Project) (cells []string) {
			cells = []string{p.Slug, p.Title, p.Category, strings.Join(p.Tags, ", ")}
			return cells
		})
	return out
}

// Articles renders the articles screen.
func (r *Renderer) Articles(view Lister[models.Article]) (out string) {
	out = List(r, "Articles", view,
		[]string{"ID", "TITLE", "CATEGORY", "PUBLISHED", "AUTHOR", "NEW"},
		func(a models.Article) (cells []string) {
			isNew := ""
			if a.IsNew {
				isNew = "NEW"
			}
			cells = []string{a.ID, a.Title, a.Category, a.PublishedDate, a.Author, isNew}
			return cells
		})
	return out
}

// Experiences renders the experiences screen.
func (r *Renderer) Experiences(view Lister[models.Experience]) (out string) {
	out = List(r, "Experiences", view,
		[]string{"ID", "TITLE", "COMPANY", "DATES", "TYPE", "SKILLS"},
		func(e models.Experience) (cells []string) {
			kind := strings.TrimSpace(e.Type + " " + e.TypeTime)
			cells = []string{e.ID, e.Title, e.Company, e.DateRange, kind, strings.Join(e.Skills, ", ")}
			return cells
		})
	return out
}

// Skills renders the skill categories.
func (r *Renderer) Skills(view Lister[models.Skill]) (out string) {
	out = List(r, "Skills", view,
		[]string{"ID", "CATEGORY", "ICON", "SKILLS"},
		func(s models.Skill) (cells []string) {
			items := make([]string, 0, len(s.Skills))
			for _, item := range s.Skills {
				items = append(items, fmt.Sprintf("%s %d%%", item.Name, item.Percent()))
			}
			cells = []string{s.ID, s.Name, s.Icon, strings.Join(items, ", ")}
			return cells
		})
	return out
}

// Achievements renders the achievements with the active filter. The badge
// counts what is visible.
func (r *Renderer) Achievements(view *views.AchievementsView) (out string) {
	var sb strings.Builder

	visible := view.Visible()
	sb.WriteString(r.Header("Achievements", len(visible), view.Loading(), ""))
	sb.WriteString("\n")

	filters := make([]string, 0, len(models.AchievementTypes)+1)
	for _, filter := range append([]string{views.FilterAll}, models.AchievementTypes...) {
		label := r.title.String(filter)
		if filter == view.Filter() {
			label = r.styles.Selected.Render("[" + label + "]")
		} else {
			label = r.styles.Muted.Render(label)
		}
		filters = append(filters, label)
	}
	sb.WriteString(strings.Join(filters, "  "))
	sb.WriteString("\n\n")

	if view.Loading() || len(visible) == 0 {
		sb.WriteString(r.Placeholder("achievements", view.Loading()))
		sb.WriteString("\n")
		out = sb.String()
		return out
	}

	rows := make([][]string, 0, len(visible))
	for _, a := range visible {
		featured := ""
		if a.IsFeatured {
			featured = "*"
		}
		rows = append(rows, []string{r.title.String(a.Type), a.Title, a.Issuer, a.IssueDate, featured})
	}
	sb.WriteString(r.Table([]string{"TYPE", "TITLE", "ISSUER", "DATE", "FEATURED"}, rows))
	sb.WriteString("\n")

	out = sb.String()
	return out
}

// Dashboard renders the stat cards and recent activity.
func (r *Renderer) Dashboard(view *views.DashboardView) (out string) {
	var sb strings.Builder

	stats := view.Stats.Value()
	sb.WriteString(r.Header("Dashboard", stats.Total(), view.Stats.Loading(), ""))
	sb.WriteString("\n\n")

	cards := []struct {
		label string
		count int
	}{
		{"PROJECTS", stats.Projects},
		{"ARTICLES", stats.Articles},
		{"EXPERIENCES", stats.Experiences},
		{"SKILLS", stats.Skills},
	}

	rendered := make([]string, 0, len(cards))
	for _, card := range cards {
		value := strconv.Itoa(card.count)
		if !view.Stats.Loaded() {
			value = "--"
		}
		rendered = append(rendered, r.styles.Card.Render(
			r.styles.Label.Render(card.label)+"\n"+r.styles.Title.Render(value)))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	sb.WriteString("\n")

	if view.Recent != nil {
		sb.WriteString("\n")
		sb.WriteString(r.styles.Title.Render("Recent Activity"))
		sb.WriteString("\n")
		if view.Recent.Count() == 0 {
			sb.WriteString(r.styles.Muted.Render("No activity recorded yet"))
			sb.WriteString("\n")
		}
		for _, entry := range view.Recent.Items() {
			sb.WriteString(fmt.Sprintf("%s %s %s\n",
				r.status(entry.Status),
				entry.Action,
				r.styles.Muted.Render(entry.Resource+" · "+Ago(entry.CreatedAt, time.Now()))))
		}
	}

	out = sb.String()
	return out
}

// Logs renders the activity log.
func (r *Renderer) Logs(view Lister[activity.Entry]) (out string) {
	var sb strings.Builder

	sb.WriteString(r.Header("System Logs", view.Count(), view.Loading(), "ENTRIES"))
	sb.WriteString("\n\n")

	if view.Loading() || view.Count() == 0 {
		sb.WriteString(r.Placeholder("log entries", view.Loading()))
		sb.WriteString("\n")
		out = sb.String()
		return out
	}

	now := time.Now()
	rows := make([][]string, 0, view.Count())
	for _, entry := range view.Items() {
		rows = append(rows, []string{entry.Action, entry.Resource, entry.Admin, r.status(entry.Status), Ago(entry.CreatedAt, now)})
	}
	sb.WriteString(r.Table([]string{"ACTION", "RESOURCE", "ADMIN", "STATUS", "TIMESTAMP"}, rows))
	sb.WriteString("\n")

	out = sb.String()
	return out
}

// Profile renders the owner profile.
func (r *Renderer) Profile(profile models.Profile) (out string) {
	out = r.fields("Profile", [][2]string{
		{"Name", profile.Name},
		{"Title", profile.Title},
		{"Email", profile.Email},
		{"Phone", profile.Phone},
		{"Address", profile.Address},
		{"Avatar", profile.AvatarURL},
		{"CV", profile.CVURL},
		{"Bio", profile.Bio},
	})
	return out
}

// Contact renders contact channels and social links.
func (r *Renderer) Contact(contact models.Contact) (out string) {
	pairs := [][2]string{
		{"Email", contact.Contact.Email},
		{"Phone", contact.Contact.Phone},
		{"Address", contact.Contact.Address},
		{"WhatsApp", contact.Contact.WhatsappURL},
	}
	for _, link := range contact.SocialLinks {
		pairs = append(pairs, [2]string{link.Platform, link.URL})
	}
	out = r.fields("Contact", pairs)
	return out
}

// Project renders a single project.
func (r *Renderer) Project(project models.Project) (out string) {
	pairs := [][2]string{
		{"Title", project.Title},
		{"Slug", project.Slug},
		{"Category", project.Category},
		{"Tags", strings.Join(project.Tags, ", ")},
		{"URL", project.URL},
		{"Image", project.Image},
	}
	for _, block := range project.Content {
		pairs = append(pairs, [2]string{block.Name, block.Quote})
	}
	out = r.fields(project.Title, pairs)
	return out
}

// Unavailable is shown when a detail view could not be loaded.
func (r *Renderer) Unavailable(resource string) (out string) {
	out = r.styles.Muted.Render(fmt.Sprintf("No %s found", resource)) + "\n"
	return out
}

func (r *Renderer) fields(title string, pairs [][2]string) (out string) {
	var sb strings.Builder
	sb.WriteString(r.styles.Title.Render(title))
	sb.WriteString("\n\n")

	width := 0
	for _, pair := range pairs {
		width = max(width, lipgloss.Width(pair[0]))
	}

	for _, pair := range pairs {
		if pair[1] == "" {
			continue
		}
		sb.WriteString(r.styles.Label.Width(width + 2).Render(pair[0]))
		sb.WriteString(r.styles.Value.Render(pair[1]))
		sb.WriteString("\n")
	}

	out = sb.String()
	return out
}

func (r *Renderer) status(status string) (out string) {
	label := strings.ToUpper(status)
	switch status {
	case activity.StatusSuccess:
		out = r.styles.Success.Render(label)
	case activity.StatusBlocked:
		out = r.styles.Blocked.Render(label)
	default:
		out = r.styles.Failed.Render(label)
	}
	return out
}

// Ago formats t relative to now the way the log screen shows timestamps.
func Ago(t, now time.Time) (out string) {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		out = "just now"
	case d < time.Hour:
		out = plural(int(d/time.Minute), "min")
	case d < 24*time.Hour:
		out = plural(int(d/time.Hour), "hour")
	default:
		out = plural(int(d/(24*time.Hour)), "day")
	}
	return out
}

func plural(n int, unit string) (out string) {
	if n != 1 {
		unit += "s"
	}
	out = fmt.Sprintf("%d %s ago", n, unit)
	return out
}

// Settings renders the effective configuration.
func (r *Renderer) Settings(pairs [][2]string) (out string) {
	out = r.fields("Settings", pairs)
	return out
}
