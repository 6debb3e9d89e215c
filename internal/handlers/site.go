package handlers

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"sciallastudio/internal/content"
	"sciallastudio/internal/locale"
	"sciallastudio/internal/seo"
)

// Site serves the crawler-facing files and locale negotiation.
type Site struct {
	service *content.Service
	siteURL string
	now     func() time.Time
}

// NewSite creates the site handler group.
func NewSite(service *content.Service, siteURL string) *Site {
	return &Site{service: service, siteURL: strings.TrimRight(siteURL, "/"), now: time.Now}
}

// Sitemap writes sitemap.xml covering every locale variant of the static,
// city and service pages plus one entry per project.
func (h *Site) Sitemap(w http.ResponseWriter, r *http.Request) {
	projects := h.service.AllProjects(r.Context(), content.Filter{})
	set := seo.Sitemap(h.siteURL, h.now(), projects)

	var buf bytes.Buffer
	if err := seo.WriteSitemap(&buf, set); err != nil {
		logFor(r).Error("write sitemap failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(buf.Bytes())
}

func (h *Site) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(seo.Robots(h.siteURL)))
}

type localeResponse struct {
	Locale    string   `json:"locale"`
	OGLocale  string   `json:"ogLocale"`
	Supported []string `json:"supported"`
	Path      string   `json:"path,omitempty"`
}

// Locale reports the negotiated locale. With ?path it also returns that
// path as seen in the negotiated locale.
func (h *Site) Locale(w http.ResponseWriter, r *http.Request) {
	loc := requestLocale(r)
	resp := localeResponse{
		Locale:    loc,
		OGLocale:  locale.OpenGraph(loc),
		Supported: locale.Supported,
	}
	if p := r.URL.Query().Get("path"); p != "" {
		resp.Path = locale.Path(loc, p)
	}
	writeJSON(w, http.StatusOK, resp)
}
