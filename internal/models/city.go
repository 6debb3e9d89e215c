package models

import (
	"fmt"

	"sciallastudio/internal/slug"
)

// Testimonial is a client quote shown on a city landing page.
type Testimonial struct {
	ClientName string `json:"clientName"`
	Quote      string `json:"quote"`
	Rating     int    `json:"rating"`
}

// City is a served market with its own landing page.
type City struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Slug         string           `json:"slug"`
	HeroImage    *Image           `json:"heroImage,omitempty"`
	Description  string           `json:"description,omitempty"`
	Testimonials []Testimonial    `json:"testimonials"`
	SEO          *SEO             `json:"seo,omitempty"`
	Projects     []ProjectSummary `json:"projects,omitempty"`
}

// AverageRating returns the mean rating over testimonials with a valid
// rating, and how many were counted.
func (c *City) AverageRating() (float64, int) {
	var sum, n int
	for _, t := range c.Testimonials {
		if validRating(t.Rating) {
			sum += t.Rating
			n++
		}
	}
	if n == 0 {
		return 0, 0
	}
	return float64(sum) / float64(n), n
}

// Validate checks the slug and testimonial ratings.
func (c *City) Validate() error {
	if !slug.Valid(c.Slug) {
		return fmt.Errorf("slug %q is not URL-safe", c.Slug)
	}
	for i, t := range c.Testimonials {
		if !validRating(t.Rating) {
			return fmt.Errorf("testimonial %d: rating %d out of range", i, t.Rating)
		}
	}
	return nil
}
