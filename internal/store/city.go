package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"sciallastudio/internal/models"
)

// cityProjectsLimit is how many of a city's newest projects its page shows.
const cityProjectsLimit = 6

// CityStore reads cities from the mirror tables.
type CityStore struct {
	db *sql.DB
}

// NewCityStore creates a new CityStore with the given database connection.
func NewCityStore(db *sql.DB) *CityStore {
	return &CityStore{db: db}
}

// List returns every city ordered by name.
func (s *CityStore) List(ctx context.Context) ([]models.City, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, slug, hero_image, description, testimonials, seo
		FROM cities
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	defer rows.Close()

	cities := []models.City{}
	for rows.Next() {
		c, err := scanCity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		if validCity(c) {
			cities = append(cities, *c)
		}
	}
	return cities, rows.Err()
}

// FindBySlug returns the city with the given slug and its newest projects,
// or nil if not found.
func (s *CityStore) FindBySlug(ctx context.Context, slug string) (*models.City, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, slug, hero_image, description, testimonials, seo
		FROM cities
		WHERE slug = $1
	`, slug)
	c, err := scanCity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find city by slug: %w", err)
	}
	if !validCity(c) {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.title, p.slug, p.featured_image, p.categories
		FROM projects p
		JOIN cities c ON c.id = p.city_id
		WHERE c.slug = $1
		ORDER BY p.created_at DESC
		LIMIT $2
	`, slug, cityProjectsLimit)
	if err != nil {
		return nil, fmt.Errorf("list city projects: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			ps                   models.ProjectSummary
			id                   uuid.UUID
			featured, categories []byte
		)
		if err := rows.Scan(&id, &ps.Title, &ps.Slug, &featured, &categories); err != nil {
			return nil, fmt.Errorf("scan city project: %w", err)
		}
		ps.ID = id.String()
		if err := decodeJSON(featured, &ps.FeaturedImage); err != nil {
			return nil, fmt.Errorf("city project %s featured_image: %w", ps.Slug, err)
		}
		if err := decodeJSON(categories, &ps.Categories); err != nil {
			return nil, fmt.Errorf("city project %s categories: %w", ps.Slug, err)
		}
		c.Projects = append(c.Projects, ps)
	}
	return c, rows.Err()
}

func scanCity(row scanner) (*models.City, error) {
	var (
		c                       models.City
		id                      uuid.UUID
		hero, testimonials, seo []byte
	)
	if err := row.Scan(&id, &c.Name, &c.Slug, &hero, &c.Description, &testimonials, &seo); err != nil {
		return nil, err
	}
	c.ID = id.String()
	if err := decodeJSON(hero, &c.HeroImage); err != nil {
		return nil, fmt.Errorf("city %s hero_image: %w", c.Slug, err)
	}
	if err := decodeJSON(testimonials, &c.Testimonials); err != nil {
		return nil, fmt.Errorf("city %s testimonials: %w", c.Slug, err)
	}
	if err := decodeJSON(seo, &c.SEO); err != nil {
		return nil, fmt.Errorf("city %s seo: %w", c.Slug, err)
	}
	if c.Testimonials == nil {
		c.Testimonials = []models.Testimonial{}
	}
	return &c, nil
}

// validCity reports whether c satisfies the model invariants, logging the
// rows that do not.
func validCity(c *models.City) bool {
	if err := c.Validate(); err != nil {
		slog.Warn("store: skipping invalid city", "id", c.ID, "slug", c.Slug, "error", err)
		return false
	}
	return true
}
