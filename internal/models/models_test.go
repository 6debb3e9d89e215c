package models

import (
	"testing"
	"time"
)

func TestCategoryLabel(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryKitchenDesign, "Kitchen Design"},
		{CategoryLivingRoom, "Living Room"},
		{CategoryModern, "Modern"},
		{Category("outdoor-living-space"), "Outdoor Living Space"},
	}
	for _, tt := range tests {
		if got := tt.cat.Label(); got != tt.want {
			t.Errorf("Category(%q).Label() = %q, want %q", tt.cat, got, tt.want)
		}
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories {
		if !c.Valid() {
			t.Errorf("%q should be valid", c)
		}
	}
	if Category("garage").Valid() {
		t.Error("unknown category should not be valid")
	}
}

func TestLocationName(t *testing.T) {
	if got := LocationNYC.Name(); got != "New York City" {
		t.Errorf("nyc name = %q", got)
	}
	if got := LocationSlug("miami-beach").Name(); got != "Miami Beach" {
		t.Errorf("unknown location name = %q", got)
	}
	if LocationSlug("miami").Valid() {
		t.Error("miami should not be a served location")
	}
}

func TestBudgetLabel(t *testing.T) {
	if got := Budget250kPlus.Label(); got != "$250k+" {
		t.Errorf("label = %q", got)
	}
	if got := BudgetRange("custom").Label(); got != "custom" {
		t.Errorf("unknown label = %q", got)
	}
}

func TestProjectCategoryHelpers(t *testing.T) {
	a := &Project{Categories: []Category{CategoryKitchenDesign, CategoryModern}}
	b := &Project{Categories: []Category{CategoryBedroom, CategoryModern}}
	c := &Project{Categories: []Category{CategoryLuxury}}

	if !a.HasCategory(CategoryModern) {
		t.Error("a should have modern")
	}
	if a.HasCategory(CategoryLuxury) {
		t.Error("a should not have luxury")
	}
	if !a.SharesCategory(b) {
		t.Error("a and b share modern")
	}
	if a.SharesCategory(c) {
		t.Error("a and c share nothing")
	}
}

func TestProjectLastModified(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	p := &Project{CreatedAt: created, CompletionDate: "2024-06-15"}
	if got := p.LastModified(); !got.Equal(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("with completion date: got %v", got)
	}

	p.CompletionDate = ""
	if got := p.LastModified(); !got.Equal(created) {
		t.Errorf("without completion date: got %v", got)
	}

	p.CompletionDate = "June 2024"
	if got := p.LastModified(); !got.Equal(created) {
		t.Errorf("unparseable completion date: got %v", got)
	}
}

func TestProjectValidate(t *testing.T) {
	valid := Project{Slug: "lakefront-kitchen", Categories: []Category{CategoryKitchenDesign}}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid project: %v", err)
	}

	tests := []struct {
		name string
		p    Project
	}{
		{"bad slug", Project{Slug: "Lakefront Kitchen", Categories: []Category{CategoryModern}}},
		{"no categories", Project{Slug: "loft"}},
		{"rating out of range", Project{Slug: "loft", Categories: []Category{CategoryModern}, Client: &ProjectClient{Rating: 6}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.p.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestCityAverageRating(t *testing.T) {
	c := City{Testimonials: []Testimonial{{Rating: 5}, {Rating: 4}, {Rating: 0}}}
	avg, n := c.AverageRating()
	if n != 2 || avg != 4.5 {
		t.Errorf("AverageRating = (%v, %d), want (4.5, 2)", avg, n)
	}

	empty := City{}
	if avg, n := empty.AverageRating(); avg != 0 || n != 0 {
		t.Errorf("empty AverageRating = (%v, %d)", avg, n)
	}
}

func TestCityValidate(t *testing.T) {
	good := City{Slug: "tampa", Testimonials: []Testimonial{{Rating: 5}}}
	if err := good.Validate(); err != nil {
		t.Errorf("valid city: %v", err)
	}
	bad := City{Slug: "tampa", Testimonials: []Testimonial{{Rating: 9}}}
	if err := bad.Validate(); err == nil {
		t.Error("expected rating error")
	}
}

func TestPortableTextPlainText(t *testing.T) {
	pt := PortableText{
		{Type: "block", Children: []Span{{Type: "span", Text: "A sunlit "}, {Type: "span", Text: "kitchen."}}},
		{Type: "block", Children: []Span{{Type: "span", Text: "Custom oak cabinetry."}}},
	}
	want := "A sunlit kitchen. Custom oak cabinetry."
	if got := pt.PlainText(); got != want {
		t.Errorf("PlainText = %q, want %q", got, want)
	}

	if got := PortableText(nil).PlainText(); got != "" {
		t.Errorf("nil PlainText = %q", got)
	}
}

func TestPortableTextExcerpt(t *testing.T) {
	pt := PortableText{{Type: "block", Children: []Span{{Type: "span", Text: "Warm walnut floors and brass fixtures throughout"}}}}

	if got := pt.Excerpt(100); got != "Warm walnut floors and brass fixtures throughout" {
		t.Errorf("short text should be untouched, got %q", got)
	}
	if got := pt.Excerpt(20); got != "Warm walnut floors…" {
		t.Errorf("Excerpt(20) = %q", got)
	}
}
