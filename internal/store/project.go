// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"sciallastudio/internal/models"
	"sciallastudio/internal/slug"
)

// projectColumns is the select list scanned by scanProject.
const projectColumns = `
	p.id, p.created_at, p.title, p.slug, c.name, c.slug,
	p.categories, p.featured_image, p.gallery, p.description,
	p.completion_date, p.client, p.details, p.seo`

// ProjectStore reads projects from the mirror tables. Every list is
// ordered newest-created first.
type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore creates a new ProjectStore with the given database connection.
func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

// List returns every project.
func (s *ProjectStore) List(ctx context.Context) ([]models.Project, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT`+projectColumns+`
		FROM projects p
		JOIN cities c ON c.id = p.city_id
		ORDER BY p.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return collectProjects(rows)
}

// ListByCity returns the projects located in the city with the given slug.
func (s *ProjectStore) ListByCity(ctx context.Context, city string) ([]models.Project, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT`+projectColumns+`
		FROM projects p
		JOIN cities c ON c.id = p.city_id
		WHERE c.slug = $1
		ORDER BY p.created_at DESC
	`, city)
	if err != nil {
		return nil, fmt.Errorf("list projects by city: %w", err)
	}
	return collectProjects(rows)
}

// Latest returns the limit newest projects.
func (s *ProjectStore) Latest(ctx context.Context, limit int) ([]models.Project, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT`+projectColumns+`
		FROM projects p
		JOIN cities c ON c.id = p.city_id
		ORDER BY p.created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list latest projects: %w", err)
	}
	return collectProjects(rows)
}

// FindBySlug returns the project with the given slug, or nil if not found.
func (s *ProjectStore) FindBySlug(ctx context.Context, slug string) (*models.Project, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT`+projectColumns+`
		FROM projects p
		JOIN cities c ON c.id = p.city_id
		WHERE p.slug = $1
	`, slug)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project by slug: %w", err)
	}
	if !validProject(p) {
		return nil, nil
	}
	return p, nil
}

// Slugs returns every project slug.
func (s *ProjectStore) Slugs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT slug FROM projects ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list project slugs: %w", err)
	}
	defer rows.Close()

	slugs := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan project slug: %w", err)
		}
		if slug.Valid(v) {
			slugs = append(slugs, v)
		}
	}
	return slugs, rows.Err()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProject(row scanner) (*models.Project, error) {
	var (
		p                                   models.Project
		id                                  uuid.UUID
		categories, featured, gallery, desc []byte
		client, details, seo                []byte
		completed                           sql.NullTime
	)
	if err := row.Scan(
		&id, &p.CreatedAt, &p.Title, &p.Slug, &p.Location.Name, &p.Location.Slug,
		&categories, &featured, &gallery, &desc,
		&completed, &client, &details, &seo,
	); err != nil {
		return nil, err
	}
	p.ID = id.String()
	p.CreatedAt = p.CreatedAt.UTC()
	if completed.Valid {
		p.CompletionDate = completed.Time.Format(models.DateLayout)
	}

	fields := []struct {
		name string
		raw  []byte
		dst  any
	}{
		{"categories", categories, &p.Categories},
		{"featured_image", featured, &p.FeaturedImage},
		{"gallery", gallery, &p.Gallery},
		{"description", desc, &p.Description},
		{"client", client, &p.Client},
		{"details", details, &p.Details},
		{"seo", seo, &p.SEO},
	}
	for _, f := range fields {
		if err := decodeJSON(f.raw, f.dst); err != nil {
			return nil, fmt.Errorf("project %s %s: %w", p.Slug, f.name, err)
		}
	}
	if p.Categories == nil {
		p.Categories = []models.Category{}
	}
	return &p, nil
}

func collectProjects(rows *sql.Rows) ([]models.Project, error) {
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		if validProject(p) {
			projects = append(projects, *p)
		}
	}
	return projects, rows.Err()
}

// validProject reports whether p satisfies the model invariants, logging
// the rows that do not.
func validProject(p *models.Project) bool {
	if err := p.Validate(); err != nil {
		slog.Warn("store: skipping invalid project", "id", p.ID, "slug", p.Slug, "error", err)
		return false
	}
	return true
}

// decodeJSON unmarshals a nullable JSONB column; NULL leaves dst untouched.
func decodeJSON(raw []byte, dst any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, dst)
}
