package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"sciallastudio/internal/content"
	"sciallastudio/internal/models"
	"sciallastudio/internal/seo"
)

// projectsPerPage is the portfolio grid size.
const projectsPerPage = 12

type portfolioResponse struct {
	Projects    []models.Project  `json:"projects"`
	Categories  []models.Category `json:"categories"`
	Stats       content.Stats     `json:"stats"`
	CurrentPage int               `json:"currentPage"`
	HasMore     bool              `json:"hasMore"`
	Metadata    seo.Metadata      `json:"metadata"`
}

// Portfolio serves the listing page: one page of projects plus the
// category list and stats, fetched concurrently. hasMore is true when the
// page came back full.
func (h *Content) Portfolio(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := 1
	if raw := strings.TrimSpace(q.Get("page")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid page")
			return
		}
		page = n
	}
	filter := seo.PortfolioFilter{
		City:        strings.TrimSpace(q.Get("city")),
		Category:    strings.TrimSpace(q.Get("category")),
		ServiceType: strings.TrimSpace(q.Get("serviceType")),
	}

	var resp portfolioResponse
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		resp.Projects = h.service.AllProjects(ctx, content.Filter{
			City:     filter.City,
			Category: models.Category(filter.Category),
			Limit:    projectsPerPage,
			Offset:   (page - 1) * projectsPerPage,
		})
		return nil
	})
	g.Go(func() error {
		resp.Categories = h.service.ProjectCategories(ctx)
		return nil
	})
	g.Go(func() error {
		resp.Stats = h.service.ProjectStats(ctx)
		return nil
	})
	// Service reads never fail; Wait only joins.
	_ = g.Wait()

	resp.CurrentPage = page
	resp.HasMore = len(resp.Projects) == projectsPerPage
	resp.Metadata = seo.PortfolioMetadata(seoOptions(h.siteURL, r), resp.Stats, filter)
	writeJSON(w, http.StatusOK, resp)
}
