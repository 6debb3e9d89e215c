// Package content is the read façade over the portfolio: it hides which
// store the projects and cities come from, applies filtering and
// pagination, and never lets a store outage reach a page.
package content

import (
	"context"

	"sciallastudio/internal/models"
)

// Source is a content store. Single-item lookups return nil, nil when the
// item does not exist. Project lists are newest-created first.
type Source interface {
	Projects(ctx context.Context) ([]models.Project, error)
	ProjectsByCity(ctx context.Context, city string) ([]models.Project, error)
	LatestProjects(ctx context.Context, limit int) ([]models.Project, error)
	Project(ctx context.Context, slug string) (*models.Project, error)
	ProjectSlugs(ctx context.Context) ([]string, error)
	Cities(ctx context.Context) ([]models.City, error)
	City(ctx context.Context, slug string) (*models.City, error)
}
