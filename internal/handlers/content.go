// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"sciallastudio/internal/content"
	"sciallastudio/internal/models"
	"sciallastudio/internal/seo"
)

// maxPageSize caps ?limit on listing endpoints.
const maxPageSize = 100

// Content groups the read-only portfolio and city endpoints. Reads never
// fail: a content store outage yields empty lists and 404s.
type Content struct {
	service *content.Service
	siteURL string
}

// NewContent creates the content handler group.
func NewContent(service *content.Service, siteURL string) *Content {
	return &Content{service: service, siteURL: strings.TrimRight(siteURL, "/")}
}

type itemsResponse[T any] struct {
	Items []T `json:"items"`
}

// Projects lists projects filtered by ?city and ?category and paged by
// ?limit and ?offset.
func (h *Content) Projects(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, offset, err := parseLimitOffset(q, 0, maxPageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	items := h.service.AllProjects(r.Context(), content.Filter{
		City:     strings.TrimSpace(q.Get("city")),
		Category: models.Category(strings.TrimSpace(q.Get("category"))),
		Limit:    limit,
		Offset:   offset,
	})
	writeJSON(w, http.StatusOK, itemsResponse[models.Project]{Items: items})
}

// Latest lists the newest projects, six unless ?limit says otherwise.
func (h *Content) Latest(w http.ResponseWriter, r *http.Request) {
	limit, _, err := parseLimitOffset(r.URL.Query(), content.DefaultLatestLimit, maxPageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	items := h.service.LatestProjects(r.Context(), limit)
	writeJSON(w, http.StatusOK, itemsResponse[models.Project]{Items: items})
}

// ByCategory lists up to ?limit projects tagged with the {category} path
// parameter. Unknown categories are a 400.
func (h *Content) ByCategory(w http.ResponseWriter, r *http.Request) {
	category := models.Category(chi.URLParam(r, "category"))
	if !category.Valid() {
		writeError(w, http.StatusBadRequest, "Unknown category")
		return
	}
	limit, _, err := parseLimitOffset(r.URL.Query(), 0, maxPageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	items := h.service.ProjectsByCategory(r.Context(), category, limit)
	writeJSON(w, http.StatusOK, itemsResponse[models.Project]{Items: items})
}

func (h *Content) Slugs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, itemsResponse[string]{Items: h.service.ProjectSlugs(r.Context())})
}

func (h *Content) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, itemsResponse[models.Category]{Items: h.service.ProjectCategories(r.Context())})
}

func (h *Content) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.ProjectStats(r.Context()))
}

type projectData struct {
	Breadcrumbs seo.BreadcrumbList `json:"breadcrumbs"`
	Project     seo.CreativeWork   `json:"project"`
}

type projectResponse struct {
	Project        *models.Project  `json:"project"`
	Related        []models.Project `json:"related"`
	Metadata       seo.Metadata     `json:"metadata"`
	StructuredData projectData      `json:"structuredData"`
}

type notFoundResponse struct {
	errorResponse
	Metadata seo.Metadata `json:"metadata"`
}

// Project returns one project with its related projects, page metadata
// and JSON-LD.
func (h *Content) Project(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	p, ok := h.service.Project(ctx, slug)
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundResponse{
			errorResponse: errorResponse{Error: "Project not found"},
			Metadata:      seo.ProjectNotFound(),
		})
		return
	}

	opts := seoOptions(h.siteURL, r)
	writeJSON(w, http.StatusOK, projectResponse{
		Project:  p,
		Related:  h.service.RelatedProjects(ctx, p, content.DefaultRelatedLimit),
		Metadata: seo.ProjectMetadata(opts, p),
		StructuredData: projectData{
			Breadcrumbs: seo.ProjectBreadcrumbs(opts, p),
			Project:     seo.ProjectJSONLD(opts, p),
		},
	})
}
