package sanity

import (
	"log/slog"
	"time"

	"sciallastudio/internal/models"
)

// The types below mirror the document shapes returned by the queries.
// They are converted to models before leaving the package.

type slugField struct {
	Current string `json:"current"`
}

type assetRef struct {
	Ref string `json:"_ref"`
}

type imageDoc struct {
	Asset   *assetRef `json:"asset"`
	URL     string    `json:"url"`
	Alt     string    `json:"alt"`
	Caption string    `json:"caption"`
}

type seoDoc struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Keywords    []string  `json:"keywords"`
	OGImage     *imageDoc `json:"ogImage"`
}

type locationDoc struct {
	Name string    `json:"name"`
	Slug slugField `json:"slug"`
}

type projectDoc struct {
	ID             string                 `json:"_id"`
	CreatedAt      time.Time              `json:"_createdAt"`
	Title          string                 `json:"title"`
	Slug           slugField              `json:"slug"`
	Location       *locationDoc           `json:"location"`
	Category       []models.Category      `json:"category"`
	FeaturedImage  *imageDoc              `json:"featuredImage"`
	Gallery        []imageDoc             `json:"gallery"`
	Description    models.PortableText    `json:"description"`
	CompletionDate string                 `json:"completionDate"`
	Client         *models.ProjectClient  `json:"client"`
	ProjectDetails *models.ProjectDetails `json:"projectDetails"`
	SEO            *seoDoc                `json:"seo"`
}

type projectSummaryDoc struct {
	ID            string            `json:"_id"`
	Title         string            `json:"title"`
	Slug          slugField         `json:"slug"`
	FeaturedImage *imageDoc         `json:"featuredImage"`
	Category      []models.Category `json:"category"`
}

type cityDoc struct {
	ID           string               `json:"_id"`
	Name         string               `json:"name"`
	Slug         slugField            `json:"slug"`
	HeroImage    *imageDoc            `json:"heroImage"`
	Description  string               `json:"description"`
	Testimonials []models.Testimonial `json:"testimonials"`
	SEO          *seoDoc              `json:"seo"`
	Projects     []projectSummaryDoc  `json:"projects"`
}

func (d *imageDoc) model() *models.Image {
	if d == nil {
		return nil
	}
	img := &models.Image{URL: d.URL, Alt: d.Alt, Caption: d.Caption}
	if d.Asset != nil {
		img.AssetRef = d.Asset.Ref
	}
	return img
}

func (d *seoDoc) model() *models.SEO {
	if d == nil {
		return nil
	}
	return &models.SEO{
		Title:       d.Title,
		Description: d.Description,
		Keywords:    d.Keywords,
		OGImage:     d.OGImage.model(),
	}
}

func (d *projectDoc) model() *models.Project {
	p := &models.Project{
		ID:             d.ID,
		CreatedAt:      d.CreatedAt,
		Title:          d.Title,
		Slug:           d.Slug.Current,
		Categories:     d.Category,
		FeaturedImage:  d.FeaturedImage.model(),
		Description:    d.Description,
		CompletionDate: d.CompletionDate,
		Client:         d.Client,
		Details:        d.ProjectDetails,
		SEO:            d.SEO.model(),
	}
	if p.Categories == nil {
		p.Categories = []models.Category{}
	}
	if d.Location != nil {
		p.Location = models.CityRef{Name: d.Location.Name, Slug: d.Location.Slug.Current}
	}
	for i := range d.Gallery {
		p.Gallery = append(p.Gallery, *d.Gallery[i].model())
	}
	return p
}

func (d *cityDoc) model() *models.City {
	c := &models.City{
		ID:           d.ID,
		Name:         d.Name,
		Slug:         d.Slug.Current,
		HeroImage:    d.HeroImage.model(),
		Description:  d.Description,
		Testimonials: d.Testimonials,
		SEO:          d.SEO.model(),
	}
	if c.Testimonials == nil {
		c.Testimonials = []models.Testimonial{}
	}
	for _, p := range d.Projects {
		c.Projects = append(c.Projects, models.ProjectSummary{
			ID:            p.ID,
			Title:         p.Title,
			Slug:          p.Slug.Current,
			FeaturedImage: p.FeaturedImage.model(),
			Categories:    p.Category,
		})
	}
	return c
}

// projectModels converts docs, dropping documents that break the model
// invariants.
func projectModels(docs []projectDoc) []models.Project {
	out := make([]models.Project, 0, len(docs))
	for i := range docs {
		if p := validProject(&docs[i]); p != nil {
			out = append(out, *p)
		}
	}
	return out
}

// validProject returns the model for d, or nil when it fails validation.
func validProject(d *projectDoc) *models.Project {
	p := d.model()
	if err := p.Validate(); err != nil {
		slog.Warn("sanity: skipping invalid project", "id", p.ID, "slug", p.Slug, "error", err)
		return nil
	}
	return p
}

// validCity returns the model for d, or nil when it fails validation.
func validCity(d *cityDoc) *models.City {
	c := d.model()
	if err := c.Validate(); err != nil {
		slog.Warn("sanity: skipping invalid city", "id", c.ID, "slug", c.Slug, "error", err)
		return nil
	}
	return c
}
