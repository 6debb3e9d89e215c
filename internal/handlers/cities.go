package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"sciallastudio/internal/markdown"
	"sciallastudio/internal/models"
	"sciallastudio/internal/seo"
)

type cityData struct {
	Breadcrumbs seo.BreadcrumbList `json:"breadcrumbs"`
	Business    seo.LocalBusiness  `json:"business"`
}

type cityResponse struct {
	City            *models.City `json:"city"`
	DescriptionHTML string       `json:"descriptionHtml"`
	StructuredData  cityData     `json:"structuredData"`
}

// Cities lists the served markets ordered by name.
func (h *Content) Cities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, itemsResponse[models.City]{Items: h.service.Cities(r.Context())})
}

// City returns a city landing page: the city with its newest projects,
// the description rendered from Markdown, and LocalBusiness JSON-LD.
func (h *Content) City(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	c, ok := h.service.City(r.Context(), slug)
	if !ok {
		writeError(w, http.StatusNotFound, "City not found")
		return
	}

	descHTML, err := markdown.ToHTML(c.Description)
	if err != nil {
		logFor(r).Warn("render city description failed", "city", slug, "error", err)
		descHTML = ""
	}

	opts := seoOptions(h.siteURL, r)
	writeJSON(w, http.StatusOK, cityResponse{
		City:            c,
		DescriptionHTML: descHTML,
		StructuredData: cityData{
			Breadcrumbs: seo.BreadcrumbJSONLD(opts, seo.Crumb{Name: c.Name, Path: "/interior-design-" + c.Slug}),
			Business:    seo.CityJSONLD(opts, c),
		},
	})
}
