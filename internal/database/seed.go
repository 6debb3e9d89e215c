package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"sciallastudio/internal/models"
	"sciallastudio/internal/slug"
)

type seedCity struct {
	slug         models.LocationSlug
	description  string
	testimonials []models.Testimonial
}

type seedProject struct {
	title       string
	city        models.LocationSlug
	categories  []models.Category
	completed   string
	description string
	budget      models.BudgetRange
}

var seedCities = []seedCity{
	{models.LocationOrlando, "Custom homes and renovations across **Winter Park**, Lake Nona and Dr. Phillips.", []models.Testimonial{
		{ClientName: "Laura M.", Quote: "They understood exactly how our family lives.", Rating: 5},
	}},
	{models.LocationTampa, "Waterfront residences and coastal interiors from **South Tampa** to Davis Islands.", []models.Testimonial{
		{ClientName: "Daniel R.", Quote: "Our kitchen is now the heart of the house.", Rating: 5},
		{ClientName: "Priya S.", Quote: "Calm, organized and on budget.", Rating: 4},
	}},
	{models.LocationNYC, "Lofts and pre-war apartments reimagined for city living.", nil},
	{models.LocationLosAngeles, "Indoor-outdoor homes shaped around California light.", nil},
}

var seedProjects = []seedProject{
	{"Winter Park Boutique", models.LocationOrlando, []models.Category{models.CategoryCommercial}, "2023-10-20", "A retail space with warm oak fixtures and soft lighting.", ""},
	{"Silver Lake Bungalow", models.LocationLosAngeles, []models.Category{models.CategoryFullHome, models.CategoryTraditional}, "2024-02-12", "A 1920s bungalow restored with period details.", models.Budget100to250k},
	{"Hyde Park Spa Bath", models.LocationTampa, []models.Category{models.CategoryBathroomDesign}, "2024-04-30", "A primary bath with a curbless shower and heated floors.", models.Budget50to100k},
	{"Tribeca Loft", models.LocationNYC, []models.Category{models.CategoryLivingRoom, models.CategoryModern}, "2024-06-01", "An open loft zoned with custom millwork.", models.Budget250kPlus},
	{"Bayshore Kitchen Remodel", models.LocationTampa, []models.Category{models.CategoryKitchenDesign, models.CategoryLuxury}, "2024-11-02", "A chef's kitchen with a waterfront view.", models.Budget100to250k},
	{"Lake Nona Modern Residence", models.LocationOrlando, []models.Category{models.CategoryFullHome, models.CategoryModern}, "", "A new build with clean lines and natural stone.", ""},
}

// Seed populates an empty content store with the four served cities and a
// handful of sample projects for local development.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM cities").Scan(&count); err != nil {
		return fmt.Errorf("seed check cities: %w", err)
	}
	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	defer tx.Rollback()

	cityIDs := make(map[models.LocationSlug]string, len(seedCities))
	for _, c := range seedCities {
		testimonials, err := json.Marshal(nonNil(c.testimonials))
		if err != nil {
			return fmt.Errorf("seed marshal testimonials: %w", err)
		}
		var id string
		err = tx.QueryRow(`
			INSERT INTO cities (name, slug, description, testimonials)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, c.slug.Name(), string(c.slug), c.description, testimonials).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed insert city %s: %w", c.slug, err)
		}
		cityIDs[c.slug] = id
	}

	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	for i, p := range seedProjects {
		categories, err := json.Marshal(p.categories)
		if err != nil {
			return fmt.Errorf("seed marshal categories: %w", err)
		}
		description, err := json.Marshal(textBlocks(p.description))
		if err != nil {
			return fmt.Errorf("seed marshal description: %w", err)
		}
		var details []byte
		if p.budget != "" {
			if details, err = json.Marshal(models.ProjectDetails{Budget: p.budget}); err != nil {
				return fmt.Errorf("seed marshal details: %w", err)
			}
		}
		var completed sql.NullString
		if p.completed != "" {
			completed = sql.NullString{String: p.completed, Valid: true}
		}

		_, err = tx.Exec(`
			INSERT INTO projects (title, slug, city_id, categories, description, completion_date, details, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, p.title, slug.Generate(p.title), cityIDs[p.city], categories, description, completed, details,
			created.AddDate(0, i, 0))
		if err != nil {
			return fmt.Errorf("seed insert project %q: %w", p.title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded with sample content", "cities", len(seedCities), "projects", len(seedProjects))
	return nil
}

func nonNil(t []models.Testimonial) []models.Testimonial {
	if t == nil {
		return []models.Testimonial{}
	}
	return t
}

func textBlocks(text string) models.PortableText {
	return models.PortableText{{
		Type:     "block",
		Style:    "normal",
		Children: []models.Span{{Type: "span", Text: text}},
	}}
}
