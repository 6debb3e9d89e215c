package seo

import (
	"fmt"
	"strings"

	"sciallastudio/internal/models"
)

const (
	schemaContext = "https://schema.org"
	contactEmail  = "info@sciallastudioid.com"
)

// Thing is the common head of every JSON-LD node.
type Thing struct {
	Context string `json:"@context,omitempty"`
	Type    string `json:"@type"`
	ID      string `json:"@id,omitempty"`
}

// Organization is the studio as creator or publisher.
type Organization struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
	Logo string `json:"logo,omitempty"`
}

// PostalAddress locates a place by city.
type PostalAddress struct {
	Type            string `json:"@type"`
	AddressLocality string `json:"addressLocality"`
	AddressCountry  string `json:"addressCountry,omitempty"`
}

// Place is where a project was completed.
type Place struct {
	Type    string        `json:"@type"`
	Name    string        `json:"name"`
	Address PostalAddress `json:"address"`
}

// CreativeWork describes one portfolio project.
type CreativeWork struct {
	Thing
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	Image           string       `json:"image,omitempty"`
	Creator         Organization `json:"creator"`
	LocationCreated Place        `json:"locationCreated"`
	DateCreated     string       `json:"dateCreated"`
	DatePublished   string       `json:"datePublished"`
	Genre           string       `json:"genre"`
	Keywords        string       `json:"keywords"`
	Publisher       Organization `json:"publisher"`
}

// ListItem is one breadcrumb step.
type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

// BreadcrumbList is a page's trail from the homepage.
type BreadcrumbList struct {
	Thing
	ItemListElement []ListItem `json:"itemListElement"`
}

// Crumb is a breadcrumb step before positions are assigned.
type Crumb struct {
	Name string
	Path string
}

// ProjectJSONLD describes p as a schema.org CreativeWork.
func ProjectJSONLD(opts Options, p *models.Project) CreativeWork {
	base := opts.base()
	city := p.Location.Name

	description := p.Description.PlainText()
	if description == "" {
		description = "Interior design project in " + city
	}
	var image string
	if p.FeaturedImage != nil {
		image = p.FeaturedImage.URL
	}
	created := p.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
	tags := make([]string, 0, len(p.Categories))
	for _, c := range p.Categories {
		tags = append(tags, string(c))
	}

	return CreativeWork{
		Thing:       Thing{Context: schemaContext, Type: "CreativeWork", ID: base + "/portfolio/" + p.Slug},
		Name:        p.Title,
		Description: description,
		Image:       image,
		Creator: Organization{
			Type: "Organization",
			Name: SiteName,
			URL:  base,
			Logo: base + "/scialla-studio-logo.png",
		},
		LocationCreated: Place{
			Type:    "Place",
			Name:    city,
			Address: PostalAddress{Type: "PostalAddress", AddressLocality: city},
		},
		DateCreated:   created,
		DatePublished: created,
		Genre:         strings.Join(categoryLabels(p.Categories), ", "),
		Keywords:      strings.Join(tags, ", "),
		Publisher:     Organization{Type: "Organization", Name: SiteName},
	}
}

// BreadcrumbJSONLD numbers crumbs from 1, starting with Home.
func BreadcrumbJSONLD(opts Options, crumbs ...Crumb) BreadcrumbList {
	base := opts.base()
	items := []ListItem{{Type: "ListItem", Position: 1, Name: "Home", Item: base}}
	for i, c := range crumbs {
		items = append(items, ListItem{Type: "ListItem", Position: i + 2, Name: c.Name, Item: base + c.Path})
	}
	return BreadcrumbList{
		Thing:           Thing{Context: schemaContext, Type: "BreadcrumbList"},
		ItemListElement: items,
	}
}

// ProjectBreadcrumbs is Home › Portfolio › project.
func ProjectBreadcrumbs(opts Options, p *models.Project) BreadcrumbList {
	return BreadcrumbJSONLD(opts,
		Crumb{Name: "Portfolio", Path: "/portfolio"},
		Crumb{Name: p.Title, Path: "/portfolio/" + p.Slug},
	)
}

// AggregateRating summarises testimonial ratings.
type AggregateRating struct {
	Type        string `json:"@type"`
	RatingValue string `json:"ratingValue"`
	ReviewCount string `json:"reviewCount"`
	BestRating  string `json:"bestRating"`
	WorstRating string `json:"worstRating"`
}

// Person names a reviewer.
type Person struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// Rating is a single review score.
type Rating struct {
	Type        string `json:"@type"`
	RatingValue string `json:"ratingValue"`
}

// Review is one testimonial.
type Review struct {
	Type         string `json:"@type"`
	Author       Person `json:"author"`
	ReviewRating Rating `json:"reviewRating"`
	ReviewBody   string `json:"reviewBody"`
}

// AreaServed is the city a landing page targets.
type AreaServed struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// LocalBusiness describes the studio on a city landing page.
type LocalBusiness struct {
	Thing
	Name            string           `json:"name"`
	AlternateName   string           `json:"alternateName"`
	Description     string           `json:"description,omitempty"`
	URL             string           `json:"url"`
	Email           string           `json:"email"`
	PriceRange      string           `json:"priceRange"`
	Address         PostalAddress    `json:"address"`
	AreaServed      AreaServed       `json:"areaServed"`
	ServiceType     []string         `json:"serviceType"`
	AggregateRating *AggregateRating `json:"aggregateRating,omitempty"`
	Review          []Review         `json:"review,omitempty"`
}

// CityJSONLD describes the studio's presence in c. The aggregate rating is
// computed from the city's testimonials and omitted when there are none.
func CityJSONLD(opts Options, c *models.City) LocalBusiness {
	base := opts.base()
	pageURL := base + "/interior-design-" + c.Slug

	description := c.Description
	if c.SEO != nil && c.SEO.Description != "" {
		description = c.SEO.Description
	}

	lb := LocalBusiness{
		Thing:         Thing{Context: schemaContext, Type: "LocalBusiness", ID: pageURL},
		Name:          SiteName,
		AlternateName: fmt.Sprintf("%s - %s Interior Design", SiteName, c.Name),
		Description:   description,
		URL:           pageURL,
		Email:         contactEmail,
		PriceRange:    "$$$$",
		Address:       PostalAddress{Type: "PostalAddress", AddressLocality: c.Name, AddressCountry: "US"},
		AreaServed:    AreaServed{Type: "City", Name: c.Name},
		ServiceType:   []string{"Architecture", "Interior Design", "New Construction", "Architectural Design"},
	}

	if avg, n := c.AverageRating(); n > 0 {
		lb.AggregateRating = &AggregateRating{
			Type:        "AggregateRating",
			RatingValue: fmt.Sprintf("%.1f", avg),
			ReviewCount: fmt.Sprint(n),
			BestRating:  "5",
			WorstRating: "1",
		}
	}
	for _, t := range c.Testimonials {
		if t.Rating < 1 || t.Rating > 5 {
			continue
		}
		lb.Review = append(lb.Review, Review{
			Type:         "Review",
			Author:       Person{Type: "Person", Name: t.ClientName},
			ReviewRating: Rating{Type: "Rating", RatingValue: fmt.Sprint(t.Rating)},
			ReviewBody:   t.Quote,
		})
	}
	return lb
}
