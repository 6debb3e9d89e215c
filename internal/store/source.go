package store

import (
	"context"
	"database/sql"

	"sciallastudio/internal/models"
)

// Source serves the content read API from Postgres.
type Source struct {
	projects *ProjectStore
	cities   *CityStore
}

// NewSource creates a Source over db.
func NewSource(db *sql.DB) *Source {
	return &Source{projects: NewProjectStore(db), cities: NewCityStore(db)}
}

func (s *Source) Projects(ctx context.Context) ([]models.Project, error) {
	return s.projects.List(ctx)
}

func (s *Source) ProjectsByCity(ctx context.Context, city string) ([]models.Project, error) {
	return s.projects.ListByCity(ctx, city)
}

func (s *Source) LatestProjects(ctx context.Context, limit int) ([]models.Project, error) {
	return s.projects.Latest(ctx, limit)
}

func (s *Source) Project(ctx context.Context, slug string) (*models.Project, error) {
	return s.projects.FindBySlug(ctx, slug)
}

func (s *Source) ProjectSlugs(ctx context.Context) ([]string, error) {
	return s.projects.Slugs(ctx)
}

func (s *Source) Cities(ctx context.Context) ([]models.City, error) {
	return s.cities.List(ctx)
}

func (s *Source) City(ctx context.Context, slug string) (*models.City, error) {
	return s.cities.FindBySlug(ctx, slug)
}
