// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"errors"
	"fmt"
	"time"

	"sciallastudio/internal/slug"
)

// DateLayout is the calendar-date format used for completion dates.
const DateLayout = "2006-01-02"

// Image is a resolved image reference from the content store.
type Image struct {
	AssetRef string `json:"assetRef,omitempty"`
	URL      string `json:"url,omitempty"`
	Alt      string `json:"alt,omitempty"`
	Caption  string `json:"caption,omitempty"`
}

// SEO holds per-entity search overrides. Empty fields fall back to
// generated values.
type SEO struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	OGImage     *Image   `json:"ogImage,omitempty"`
}

// CityRef is the dereferenced city a project belongs to.
type CityRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ProjectClient carries the optional client testimonial.
type ProjectClient struct {
	Name        string `json:"name,omitempty"`
	Testimonial string `json:"testimonial,omitempty"`
	Rating      int    `json:"rating,omitempty"`
}

// ProjectDetails carries optional project metrics.
type ProjectDetails struct {
	Duration      string      `json:"duration,omitempty"`
	Budget        BudgetRange `json:"budget,omitempty"`
	SquareFootage int         `json:"squareFootage,omitempty"`
}

// Project is a portfolio entry. It is a read-only projection of the
// document owned by the content store.
type Project struct {
	ID             string          `json:"id"`
	CreatedAt      time.Time       `json:"createdAt"`
	Title          string          `json:"title"`
	Slug           string          `json:"slug"`
	Location       CityRef         `json:"location"`
	Categories     []Category      `json:"category"`
	FeaturedImage  *Image          `json:"featuredImage,omitempty"`
	Gallery        []Image         `json:"gallery,omitempty"`
	Description    PortableText    `json:"description,omitempty"`
	CompletionDate string          `json:"completionDate,omitempty"`
	Client         *ProjectClient  `json:"client,omitempty"`
	Details        *ProjectDetails `json:"projectDetails,omitempty"`
	SEO            *SEO            `json:"seo,omitempty"`
}

// ProjectSummary is the short form embedded in city pages.
type ProjectSummary struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	FeaturedImage *Image     `json:"featuredImage,omitempty"`
	Categories    []Category `json:"category"`
}

// HasCategory reports whether the project is tagged with c.
func (p *Project) HasCategory(c Category) bool {
	for _, cat := range p.Categories {
		if cat == c {
			return true
		}
	}
	return false
}

// SharesCategory reports whether p and other have at least one tag in common.
func (p *Project) SharesCategory(other *Project) bool {
	for _, cat := range other.Categories {
		if p.HasCategory(cat) {
			return true
		}
	}
	return false
}

// LastModified is the completion date when it parses, otherwise the
// creation time.
func (p *Project) LastModified() time.Time {
	if p.CompletionDate != "" {
		if t, err := time.Parse(DateLayout, p.CompletionDate); err == nil {
			return t
		}
	}
	return p.CreatedAt
}

// Validate checks the document invariants: a URL-safe slug, a non-empty
// category set, and ratings within 1..5.
func (p *Project) Validate() error {
	var errs []error
	if !slug.Valid(p.Slug) {
		errs = append(errs, fmt.Errorf("slug %q is not URL-safe", p.Slug))
	}
	if len(p.Categories) == 0 {
		errs = append(errs, errors.New("at least one category is required"))
	}
	if p.Client != nil && p.Client.Rating != 0 && !validRating(p.Client.Rating) {
		errs = append(errs, fmt.Errorf("client rating %d out of range", p.Client.Rating))
	}
	return errors.Join(errs...)
}

// Summary returns the short form of p.
func (p *Project) Summary() ProjectSummary {
	return ProjectSummary{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		FeaturedImage: p.FeaturedImage,
		Categories:    p.Categories,
	}
}

func validRating(r int) bool {
	return r >= 1 && r <= 5
}
