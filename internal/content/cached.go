package content

import (
	"context"
	"strconv"

	"sciallastudio/internal/cache"
	"sciallastudio/internal/models"
)

// CachedSource serves reads from a QueryCache and falls through to the
// wrapped Source once an entry has aged out.
type CachedSource struct {
	source Source
	cache  *cache.QueryCache
}

// NewCachedSource decorates source with qc.
func NewCachedSource(source Source, qc *cache.QueryCache) *CachedSource {
	return &CachedSource{source: source, cache: qc}
}

func (s *CachedSource) Projects(ctx context.Context) ([]models.Project, error) {
	return cache.Remember(ctx, s.cache, "projects", s.source.Projects)
}

func (s *CachedSource) ProjectsByCity(ctx context.Context, city string) ([]models.Project, error) {
	return cache.Remember(ctx, s.cache, "projects:city:"+city, func(ctx context.Context) ([]models.Project, error) {
		return s.source.ProjectsByCity(ctx, city)
	})
}

func (s *CachedSource) LatestProjects(ctx context.Context, limit int) ([]models.Project, error) {
	return cache.Remember(ctx, s.cache, "projects:latest:"+strconv.Itoa(limit), func(ctx context.Context) ([]models.Project, error) {
		return s.source.LatestProjects(ctx, limit)
	})
}

func (s *CachedSource) Project(ctx context.Context, slug string) (*models.Project, error) {
	return cache.Remember(ctx, s.cache, "project:"+slug, func(ctx context.Context) (*models.Project, error) {
		return s.source.Project(ctx, slug)
	})
}

func (s *CachedSource) ProjectSlugs(ctx context.Context) ([]string, error) {
	return cache.Remember(ctx, s.cache, "slugs", s.source.ProjectSlugs)
}

func (s *CachedSource) Cities(ctx context.Context) ([]models.City, error) {
	return cache.Remember(ctx, s.cache, "cities", s.source.Cities)
}

func (s *CachedSource) City(ctx context.Context, slug string) (*models.City, error) {
	return cache.Remember(ctx, s.cache, "city:"+slug, func(ctx context.Context) (*models.City, error) {
		return s.source.City(ctx, slug)
	})
}
