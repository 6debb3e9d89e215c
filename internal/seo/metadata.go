package seo

import (
	"fmt"
	"net/url"
	"strings"

	"sciallastudio/internal/content"
	"sciallastudio/internal/models"
)

// Metadata is what a page puts in its <head>.
type Metadata struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Keywords    string    `json:"keywords,omitempty"`
	Canonical   string    `json:"canonical,omitempty"`
	OpenGraph   OpenGraph `json:"openGraph"`
	Twitter     Twitter   `json:"twitter"`
}

// OpenGraph holds the og:* properties.
type OpenGraph struct {
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	URL           string    `json:"url"`
	SiteName      string    `json:"siteName"`
	Locale        string    `json:"locale"`
	Type          string    `json:"type"`
	Images        []OGImage `json:"images"`
	PublishedTime string    `json:"publishedTime,omitempty"`
	ModifiedTime  string    `json:"modifiedTime,omitempty"`
	Authors       []string  `json:"authors,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
}

// OGImage is one social preview image.
type OGImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Alt    string `json:"alt,omitempty"`
}

// Twitter holds the twitter:* card properties.
type Twitter struct {
	Card        string   `json:"card"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// Options shared by the page metadata builders.
type Options struct {
	BaseURL string
	// OGLocale is the og:locale value, e.g. "en_US".
	OGLocale string
}

func (o Options) base() string {
	return strings.TrimRight(o.BaseURL, "/")
}

func (o Options) ogLocale() string {
	if o.OGLocale == "" {
		return "en_US"
	}
	return o.OGLocale
}

// ProjectNotFound is the metadata for a missing project page.
func ProjectNotFound() Metadata {
	return Metadata{
		Title:       "Project Not Found | " + SiteName,
		Description: "The requested project could not be found.",
	}
}

// ProjectMetadata builds a project page's metadata. Values from the
// project's SEO block take precedence over generated ones.
func ProjectMetadata(opts Options, p *models.Project) Metadata {
	city := p.Location.Name
	labels := categoryLabels(p.Categories)

	title := fmt.Sprintf("%s | Interior Design %s | %s", p.Title, city, SiteName)
	description := fmt.Sprintf("%s - Professional interior design project in %s. %s by %s. View our portfolio of luxury interior design.",
		p.Title, city, strings.Join(labels, ", "), SiteName)
	var extraKeywords []string
	image := p.FeaturedImage
	if p.SEO != nil {
		if p.SEO.Title != "" {
			title = p.SEO.Title
		}
		if p.SEO.Description != "" {
			description = p.SEO.Description
		}
		extraKeywords = p.SEO.Keywords
		if p.SEO.OGImage != nil && p.SEO.OGImage.URL != "" {
			image = p.SEO.OGImage
		}
	}

	keywords := []string{
		strings.ToLower(p.Title),
		"interior design " + strings.ToLower(city),
	}
	for _, c := range p.Categories {
		keywords = append(keywords, strings.ReplaceAll(string(c), "-", " "))
	}
	keywords = append(keywords, "luxury interior design", "modern home design", SiteName)
	keywords = append(keywords, extraKeywords...)

	canonical := opts.base() + "/portfolio/" + p.Slug
	images, twitterImages := ogImages(image, p.Title)

	published := p.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
	modified := published
	if p.CompletionDate != "" {
		modified = p.CompletionDate
	}
	tags := make([]string, 0, len(p.Categories))
	for _, c := range p.Categories {
		tags = append(tags, string(c))
	}

	return Metadata{
		Title:       title,
		Description: description,
		Keywords:    strings.Join(keywords, ", "),
		Canonical:   canonical,
		OpenGraph: OpenGraph{
			Title:         title,
			Description:   description,
			URL:           canonical,
			SiteName:      SiteName,
			Locale:        opts.ogLocale(),
			Type:          "article",
			Images:        images,
			PublishedTime: published,
			ModifiedTime:  modified,
			Authors:       []string{SiteName},
			Tags:          tags,
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       title,
			Description: description,
			Images:      twitterImages,
		},
	}
}

// PortfolioFilter is the listing page's query.
type PortfolioFilter struct {
	City        string
	Category    string
	ServiceType string
}

const portfolioImage = "/scialla-studio-portfolio-interior-design.jpg"

// PortfolioMetadata builds the listing page metadata. A category title
// wins over a city title, which wins over a service-type title.
func PortfolioMetadata(opts Options, stats content.Stats, f PortfolioFilter) Metadata {
	title := "Architecture & Interior Design Portfolio | " + SiteName
	description := fmt.Sprintf("Explore our %d+ architecture and interior design projects across Orlando, Tampa, NYC, and Los Angeles. New construction, modern homes, luxury renovations, and commercial spaces.", stats.Total)

	switch f.ServiceType {
	case "architecture":
		title = "Architecture Portfolio | " + SiteName
		description = "Browse our architectural design projects including new construction, additions, and renovations across the United States."
	case "interior-design":
		title = "Interior Design Portfolio | " + SiteName
		description = fmt.Sprintf("Explore our %d+ interior design projects across Orlando, Tampa, NYC, and Los Angeles. Modern homes, luxury kitchens, and commercial spaces.", stats.Total)
	}

	if f.City != "" {
		cityName := models.LocationSlug(f.City).Name()
		service := serviceLabel(f.ServiceType)
		title = fmt.Sprintf("%s %s Portfolio | %s", cityName, service, SiteName)
		description = fmt.Sprintf("%d completed %s projects in %s. Browse our portfolio of modern homes, luxury renovations, and commercial spaces.",
			stats.ByCity[cityName], strings.ToLower(service), cityName)
	}

	if f.Category != "" {
		name := models.Category(f.Category).Label()
		title = fmt.Sprintf("%s Portfolio | %s", name, SiteName)
		description = fmt.Sprintf("%d %s projects by %s. Professional architecture and interior design services with stunning results.",
			stats.ByCategory[models.Category(f.Category)], strings.ToLower(name), SiteName)
	}

	keywords := []string{
		"architecture portfolio",
		"interior design portfolio",
		"luxury interior design",
		"new construction",
		"architectural design",
		"modern home design",
		"kitchen renovation",
		"bathroom remodel",
		"commercial interior design",
	}
	if f.City != "" {
		keywords = append(keywords, f.City+" architecture", f.City+" interior design")
	}
	if f.Category != "" {
		keywords = append(keywords, strings.ReplaceAll(f.Category, "-", " "))
	}
	if f.ServiceType != "" {
		keywords = append(keywords, strings.ReplaceAll(f.ServiceType, "-", " "))
	}

	q := url.Values{}
	if f.City != "" {
		q.Set("city", f.City)
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	canonical := opts.base() + "/portfolio"
	if len(q) > 0 {
		canonical += "?" + q.Encode()
	}

	return Metadata{
		Title:       title,
		Description: description,
		Keywords:    strings.Join(keywords, ", "),
		Canonical:   canonical,
		OpenGraph: OpenGraph{
			Title:       title,
			Description: description,
			URL:         opts.base() + "/portfolio",
			SiteName:    SiteName,
			Locale:      opts.ogLocale(),
			Type:        "website",
			Images: []OGImage{{
				URL:    portfolioImage,
				Width:  1200,
				Height: 630,
				Alt:    "Scialla Studio Interior Design Portfolio",
			}},
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       title,
			Description: description,
			Images:      []string{portfolioImage},
		},
	}
}

func serviceLabel(serviceType string) string {
	switch serviceType {
	case "architecture":
		return "Architecture"
	case "interior-design":
		return "Interior Design"
	default:
		return "Architecture & Design"
	}
}

func categoryLabels(cats []models.Category) []string {
	out := make([]string, 0, len(cats))
	for _, c := range cats {
		out = append(out, c.Label())
	}
	return out
}

func ogImages(img *models.Image, fallbackAlt string) ([]OGImage, []string) {
	if img == nil || img.URL == "" {
		return []OGImage{}, []string{}
	}
	alt := img.Alt
	if alt == "" {
		alt = fallbackAlt
	}
	return []OGImage{{URL: img.URL, Alt: alt}}, []string{img.URL}
}
