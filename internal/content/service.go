// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"log/slog"
	"slices"

	"sciallastudio/internal/models"
)

const (
	// DefaultLatestLimit is the homepage strip size.
	DefaultLatestLimit = 6
	// DefaultRelatedLimit is the number of related projects on a project page.
	DefaultRelatedLimit = 3
)

// Filter narrows AllProjects. Zero values mean "no constraint"; a zero
// Limit is unbounded.
type Filter struct {
	City     string
	Category models.Category
	Limit    int
	Offset   int
}

// Stats are portfolio aggregates. ByCity is keyed by city display name.
type Stats struct {
	Total      int                     `json:"total"`
	ByCity     map[string]int          `json:"byCity"`
	ByCategory map[models.Category]int `json:"byCategory"`
}

// Service is the portfolio read API used by the HTTP handlers. Every method
// returns a renderable value: store failures are logged and replaced by an
// empty result.
type Service struct {
	source Source
}

// NewService creates a service reading from source.
func NewService(source Source) *Service {
	return &Service{source: source}
}

// AllProjects returns projects newest first. A city uses the city-scoped
// query; the category filter and the [Offset, Offset+Limit) window are
// applied afterwards, in that order.
func (s *Service) AllProjects(ctx context.Context, f Filter) []models.Project {
	var (
		projects []models.Project
		err      error
	)
	if f.City != "" {
		projects, err = s.source.ProjectsByCity(ctx, f.City)
	} else {
		projects, err = s.source.Projects(ctx)
	}
	if err != nil {
		slog.Error("content: fetching projects failed", "city", f.City, "category", f.Category, "error", err)
		return []models.Project{}
	}

	if f.Category != "" {
		projects = filterCategory(projects, f.Category)
	}
	return paginate(projects, f.Offset, f.Limit)
}

// Project returns the project with the given slug. The bool is false when
// it does not exist or the store failed.
func (s *Service) Project(ctx context.Context, slug string) (*models.Project, bool) {
	p, err := s.source.Project(ctx, slug)
	if err != nil {
		slog.Error("content: fetching project failed", "slug", slug, "error", err)
		return nil, false
	}
	return p, p != nil
}

// LatestProjects returns the limit newest projects. limit <= 0 uses
// DefaultLatestLimit.
func (s *Service) LatestProjects(ctx context.Context, limit int) []models.Project {
	if limit <= 0 {
		limit = DefaultLatestLimit
	}
	projects, err := s.source.LatestProjects(ctx, limit)
	if err != nil {
		slog.Error("content: fetching latest projects failed", "error", err)
		return []models.Project{}
	}
	return paginate(projects, 0, limit)
}

// ProjectsByCategory returns up to limit projects tagged with category.
func (s *Service) ProjectsByCategory(ctx context.Context, category models.Category, limit int) []models.Project {
	return s.AllProjects(ctx, Filter{Category: category, Limit: limit})
}

// RelatedProjects returns up to limit other projects that share current's
// city or at least one of its categories. Order is the natural newest-first
// order; the first matches win.
func (s *Service) RelatedProjects(ctx context.Context, current *models.Project, limit int) []models.Project {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}
	related := []models.Project{}
	if current == nil {
		return related
	}
	for _, p := range s.AllProjects(ctx, Filter{}) {
		if len(related) == limit {
			break
		}
		if p.ID == current.ID {
			continue
		}
		sameCity := current.Location.Slug != "" && p.Location.Slug == current.Location.Slug
		if sameCity || p.SharesCategory(current) {
			related = append(related, p)
		}
	}
	return related
}

// ProjectSlugs returns every project slug.
func (s *Service) ProjectSlugs(ctx context.Context) []string {
	slugs, err := s.source.ProjectSlugs(ctx)
	if err != nil {
		slog.Error("content: fetching project slugs failed", "error", err)
		return []string{}
	}
	if slugs == nil {
		return []string{}
	}
	return slugs
}

// ProjectCategories returns the distinct categories in use, sorted.
func (s *Service) ProjectCategories(ctx context.Context) []models.Category {
	seen := make(map[models.Category]struct{})
	for _, p := range s.AllProjects(ctx, Filter{}) {
		for _, c := range p.Categories {
			seen[c] = struct{}{}
		}
	}
	categories := make([]models.Category, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	slices.Sort(categories)
	return categories
}

// ProjectStats counts projects overall, per city and per category. A
// project with several categories counts once in each.
func (s *Service) ProjectStats(ctx context.Context) Stats {
	projects := s.AllProjects(ctx, Filter{})
	stats := Stats{
		Total:      len(projects),
		ByCity:     make(map[string]int),
		ByCategory: make(map[models.Category]int),
	}
	for _, p := range projects {
		stats.ByCity[p.Location.Name]++
		for _, c := range p.Categories {
			stats.ByCategory[c]++
		}
	}
	return stats
}

// Cities returns every city ordered by name.
func (s *Service) Cities(ctx context.Context) []models.City {
	cities, err := s.source.Cities(ctx)
	if err != nil {
		slog.Error("content: fetching cities failed", "error", err)
		return []models.City{}
	}
	if cities == nil {
		return []models.City{}
	}
	return cities
}

// City returns the city with the given slug and its newest projects.
func (s *Service) City(ctx context.Context, slug string) (*models.City, bool) {
	c, err := s.source.City(ctx, slug)
	if err != nil {
		slog.Error("content: fetching city failed", "slug", slug, "error", err)
		return nil, false
	}
	return c, c != nil
}

func filterCategory(projects []models.Project, category models.Category) []models.Project {
	out := make([]models.Project, 0, len(projects))
	for i := range projects {
		if projects[i].HasCategory(category) {
			out = append(out, projects[i])
		}
	}
	return out
}

// paginate returns projects[offset:offset+limit], clamped to the slice.
// limit <= 0 means no upper bound.
func paginate(projects []models.Project, offset, limit int) []models.Project {
	offset = max(offset, 0)
	if offset >= len(projects) {
		return []models.Project{}
	}
	end := len(projects)
	if limit > 0 {
		end = min(offset+limit, end)
	}
	return projects[offset:end]
}
