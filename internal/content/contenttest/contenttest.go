// Package contenttest provides an in-memory content.Source and a small
// portfolio fixture for tests of packages built on the content service.
package contenttest

import (
	"context"
	"sync"
	"time"

	"sciallastudio/internal/models"
)

// Source is a content.Source over fixed data. It is safe for concurrent
// use.
type Source struct {
	projects []models.Project
	cities   []models.City

	mu  sync.Mutex
	err error
}

// New returns a Source serving projects (newest first) and cities.
func New(projects []models.Project, cities []models.City) *Source {
	return &Source{projects: projects, cities: cities}
}

// Fail makes every subsequent call return err; nil restores service.
func (s *Source) Fail(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func (s *Source) failure() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Source) Projects(context.Context) ([]models.Project, error) {
	if err := s.failure(); err != nil {
		return nil, err
	}
	return append([]models.Project(nil), s.projects...), nil
}

func (s *Source) ProjectsByCity(_ context.Context, city string) ([]models.Project, error) {
	if err := s.failure(); err != nil {
		return nil, err
	}
	var out []models.Project
	for _, p := range s.projects {
		if p.Location.Slug == city {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Source) LatestProjects(_ context.Context, limit int) ([]models.Project, error) {
	if err := s.failure(); err != nil {
		return nil, err
	}
	return append([]models.Project(nil), s.projects[:min(limit, len(s.projects))]...), nil
}

func (s *Source) Project(_ context.Context, slug string) (*models.Project, error) {
	if err := s.failure(); err != nil {
		return nil, err
	}
	for i := range s.projects {
		if s.projects[i].Slug == slug {
			p := s.projects[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (s *Source) ProjectSlugs(context.Context) ([]string, error) {
	if err := s.failure(); err != nil {
		return nil, err
	}
	slugs := make([]string, 0, len(s.projects))
	for _, p := range s.projects {
		slugs = append(slugs, p.Slug)
	}
	return slugs, nil
}

func (s *Source) Cities(context.Context) ([]models.City, error) {
	if err := s.failure(); err != nil {
		return nil, err
	}
	return append([]models.City(nil), s.cities...), nil
}

func (s *Source) City(_ context.Context, slug string) (*models.City, error) {
	if err := s.failure(); err != nil {
		return nil, err
	}
	for i := range s.cities {
		if s.cities[i].Slug != slug {
			continue
		}
		c := s.cities[i]
		for _, p := range s.projects {
			if p.Location.Slug == slug && len(c.Projects) < 6 {
				c.Projects = append(c.Projects, p.Summary())
			}
		}
		return &c, nil
	}
	return nil, nil
}

var (
	tampa   = models.CityRef{Name: "Tampa", Slug: "tampa"}
	orlando = models.CityRef{Name: "Orlando", Slug: "orlando"}
	nyc     = models.CityRef{Name: "New York City", Slug: "nyc"}
)

func text(s string) models.PortableText {
	return models.PortableText{{Type: "block", Children: []models.Span{{Type: "span", Text: s}}}}
}

// Portfolio returns five projects across three cities, newest first.
// Three are tagged kitchen-design; two are in Tampa.
func Portfolio() []models.Project {
	at := func(day int) time.Time { return time.Date(2025, 6, day, 12, 0, 0, 0, time.UTC) }
	return []models.Project{
		{
			ID: "p5", CreatedAt: at(20), Title: "Bayshore Kitchen", Slug: "bayshore-kitchen",
			Location: tampa, Categories: []models.Category{models.CategoryKitchenDesign, models.CategoryLuxury},
			FeaturedImage:  &models.Image{URL: "https://cdn.example/bayshore.jpg", Alt: "Marble island"},
			Description:    text("A waterfront kitchen in warm walnut and marble."),
			CompletionDate: "2025-05-30",
			Client:         &models.ProjectClient{Name: "D. Ruiz", Testimonial: "Stunning.", Rating: 5},
		},
		{
			ID: "p4", CreatedAt: at(15), Title: "Hyde Park Bath", Slug: "hyde-park-bath",
			Location: tampa, Categories: []models.Category{models.CategoryBathroomDesign},
		},
		{
			ID: "p3", CreatedAt: at(10), Title: "Winter Park Kitchen", Slug: "winter-park-kitchen",
			Location: orlando, Categories: []models.Category{models.CategoryKitchenDesign, models.CategoryModern},
		},
		{
			ID: "p2", CreatedAt: at(5), Title: "Tribeca Loft", Slug: "tribeca-loft",
			Location: nyc, Categories: []models.Category{models.CategoryLivingRoom},
			SEO: &models.SEO{Title: "Tribeca Loft Renovation"},
		},
		{
			ID: "p1", CreatedAt: at(1), Title: "Chelsea Kitchen", Slug: "chelsea-kitchen",
			Location: nyc, Categories: []models.Category{models.CategoryKitchenDesign},
		},
	}
}

// Cities returns the cities referenced by Portfolio, ordered by name.
func Cities() []models.City {
	return []models.City{
		{ID: "c3", Name: "New York City", Slug: "nyc", Testimonials: []models.Testimonial{}},
		{ID: "c2", Name: "Orlando", Slug: "orlando", Testimonials: []models.Testimonial{}},
		{
			ID: "c1", Name: "Tampa", Slug: "tampa",
			Description: "Coastal homes with **warm** materials.",
			Testimonials: []models.Testimonial{
				{ClientName: "P. Shah", Quote: "Wonderful team.", Rating: 5},
				{ClientName: "L. Moore", Quote: "Great eye.", Rating: 4},
			},
		},
	}
}
