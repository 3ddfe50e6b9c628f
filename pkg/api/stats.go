package api

import (
	"context"

	"github.com/faftech/portfolio-admin/pkg/models"
	"golang.org/x/sync/errgroup"
)

// GetStats counts projects, articles, experiences and skills. The four
// lists are fetched concurrently; the first failure fails the aggregate.
func (c *Client) GetStats(ctx context.Context) (stats models.Stats, err error) {
	var (
		projects    []models.Project
		articles    []models.Article
		experiences []models.Experience
		skills      []models.Skill
	)

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() (err error) {
		projects, err = c.GetProjects(egCtx)
		return err
	})
	eg.Go(func() (err error) {
		articles, err = c.GetArticles(egCtx)
		return err
	})
	eg.Go(func() (err error) {
		experiences, err = c.GetExperiences(egCtx)
		return err
	})
	eg.Go(func() (err error) {
		skills, err = c.GetSkills(egCtx)
		return err
	})

	err = eg.Wait()
	if err != nil {
		return stats, err
	}

	stats = models.Stats{
		Projects:    len(projects),
		Articles:    len(articles),
		Experiences: len(experiences),
		Skills:      len(skills),
	}
	return stats, err
}
