package views

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/faftech/portfolio-admin/pkg/activity"
	"github.com/faftech/portfolio-admin/pkg/api"
	"github.com/faftech/portfolio-admin/pkg/models"
)

// FilterAll shows every achievement.
const FilterAll = "all"

// RecentActivityLimit is the number of entries shown on the dashboard.
const RecentActivityLimit = 5

// NewProjectsView lists projects.
func NewProjectsView(client *api.Client, logger *zap.Logger) (view *ListView[models.Project]) {
	view = NewListView("projects", client.GetProjects, logger)
	return view
}

// NewProjectView shows the project with the given slug.
func NewProjectView(client *api.Client, slug string, logger *zap.Logger) (view *DetailView[models.Project]) {
	view = NewDetailView("project", func(ctx context.Context) (project models.Project, err error) {
		project, err = client.GetProjectBySlug(ctx, slug)
		return project, err
	}, logger)
	return view
}

// NewProfileView shows the owner profile.
func NewProfileView(client *api.Client, logger *zap.Logger) (view *DetailView[models.Profile]) {
	view = NewDetailView("profile", client.GetProfile, logger)
	return view
}

// NewContactView shows contact details and social links.
func NewContactView(client *api.Client, logger *zap.Logger) (view *DetailView[models.Contact]) {
	view = NewDetailView("contact", client.GetContact, logger)
	return view
}

// AchievementsView lists achievements with a client-side type filter.
type AchievementsView struct {
	*ListView[models.Achievement]
	filter string
}

// NewAchievementsView creates the view with the filter set to FilterAll.
func NewAchievementsView(client *api.Client, logger *zap.Logger) (view *AchievementsView) {
	view = &AchievementsView{
		ListView: NewListView("achievements", client.GetAchievements, logger),
		filter:   FilterAll,
	}
	return view
}

// Filter returns the active filter.
func (v *AchievementsView) Filter() (filter string) {
	filter = v.filter
	return filter
}

// SetFilter selects FilterAll or one achievement type. It never refetches.
func (v *AchievementsView) SetFilter(filter string) (err error) {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		filter = FilterAll
	}

	if filter != FilterAll && !slices.Contains(models.AchievementTypes, filter) {
		err = errors.Errorf("unknown achievement type %q (want %s or one of %s)",
			filter, FilterAll, strings.Join(models.AchievementTypes, ", "))
		return err
	}

	v.filter = filter
	return err
}

// Visible returns the loaded achievements matching the filter.
func (v *AchievementsView) Visible() (visible []models.Achievement) {
	if v.filter == FilterAll {
		visible = v.Items()
		return visible
	}

	for _, achievement := range v.Items() {
		if achievement.Type == v.filter {
			visible = append(visible, achievement)
		}
	}
	return visible
}

// DashboardView combines resource counts with the latest admin activity.
type DashboardView struct {
	Stats  *DetailView[models.Stats]
	Recent *ListView[activity.Entry]
}

// NewDashboardView creates the dashboard. lister may be nil, in which case
// no recent activity is shown.
func NewDashboardView(client *api.Client, lister ActivityLister, logger *zap.Logger) (view *DashboardView) {
	view = &DashboardView{
		Stats: NewDetailView("stats", client.GetStats, logger),
	}
	if lister != nil {
		view.Recent = NewListView("activity", func(ctx context.Context) (entries []activity.Entry, err error) {
			entries, err = lister.Recent(ctx, RecentActivityLimit)
			return entries, err
		}, logger)
	}
	return view
}

// Load fetches the stats and the recent activity.
func (v *DashboardView) Load(ctx context.Context) {
	v.Stats.Load(ctx)
	if v.Recent != nil {
		v.Recent.Load(ctx)
	}
}

// Summarizer condenses activity lines into a sentence.
type Summarizer interface {
	SummarizeActivity(ctx context.Context, lines []string) (summary string)
}

// LogsView lists the activity log.
type LogsView struct {
	*ListView[activity.Entry]
}

// NewLogsView lists up to limit entries, newest first.
func NewLogsView(lister ActivityLister, limit int, logger *zap.Logger) (view *LogsView) {
	view = &LogsView{
		ListView: NewListView("logs", func(ctx context.Context) (entries []activity.Entry, err error) {
			entries, err = lister.Recent(ctx, limit)
			return entries, err
		}, logger),
	}
	return view
}

// Summarize asks summarizer for a one-line digest of the loaded entries.
func (v *LogsView) Summarize(ctx context.Context, summarizer Summarizer) (summary string) {
	lines := make([]string, 0, v.Count())
	for _, entry := range v.Items() {
		lines = append(lines, fmt.Sprintf("%s %s by %s: %s", entry.Action, entry.Resource, entry.Admin, entry.Status))
	}

	summary = summarizer.SummarizeActivity(ctx, lines)
	return summary
}
