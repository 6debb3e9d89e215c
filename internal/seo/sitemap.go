// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package seo builds the sitemap, robots file, page metadata and JSON-LD
// structured data for the public site.
package seo

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"sciallastudio/internal/locale"
	"sciallastudio/internal/models"
)

// SiteName is used in titles and structured data.
const SiteName = "Scialla Studio"

const (
	sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"
	xhtmlNS   = "http://www.w3.org/1999/xhtml"
)

// Change frequencies.
const (
	Weekly  = "weekly"
	Monthly = "monthly"
)

// ServicePages are the per-city service landing pages.
var ServicePages = []string{"kitchen-design", "bathroom-design", "commercial-design"}

type route struct {
	path     string
	freq     string
	priority float64
}

var staticRoutes = []route{
	{"/", Weekly, 1.0},
	{"/about", Monthly, 0.8},
	{"/contact", Monthly, 0.8},
	{"/portfolio", Weekly, 0.9},
	{"/services", Monthly, 0.8},
}

// URLSet is the sitemap document.
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	XHTML   string   `xml:"xmlns:xhtml,attr"`
	URLs    []URL    `xml:"url"`
}

// URL is one sitemap entry.
type URL struct {
	Loc        string      `xml:"loc"`
	LastMod    string      `xml:"lastmod,omitempty"`
	ChangeFreq string      `xml:"changefreq,omitempty"`
	Priority   string      `xml:"priority,omitempty"`
	Alternates []Alternate `xml:"xhtml:link"`
}

// Alternate links a language variant of the same page.
type Alternate struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// Sitemap lists the static pages, city landing pages and per-city service
// pages in every locale, followed by one entry per project.
func Sitemap(baseURL string, now time.Time, projects []models.Project) *URLSet {
	baseURL = strings.TrimRight(baseURL, "/")
	today := now.UTC().Format(models.DateLayout)

	routes := append([]route(nil), staticRoutes...)
	for _, city := range models.Locations {
		routes = append(routes, route{"/interior-design-" + string(city), Weekly, 0.9})
	}
	for _, city := range models.Locations {
		for _, svc := range ServicePages {
			routes = append(routes, route{fmt.Sprintf("/services/%s-%s", svc, city), Monthly, 0.7})
		}
	}

	set := &URLSet{XMLNS: sitemapNS, XHTML: xhtmlNS}
	for _, r := range routes {
		alts := alternates(baseURL, r.path)
		for _, loc := range locale.Supported {
			set.URLs = append(set.URLs, URL{
				Loc:        baseURL + locale.Path(loc, r.path),
				LastMod:    today,
				ChangeFreq: r.freq,
				Priority:   priority(r.priority),
				Alternates: alts,
			})
		}
	}

	for i := range projects {
		p := &projects[i]
		path := "/portfolio/" + p.Slug
		set.URLs = append(set.URLs, URL{
			Loc:        baseURL + path,
			LastMod:    p.LastModified().UTC().Format(models.DateLayout),
			ChangeFreq: Monthly,
			Priority:   priority(0.6),
			Alternates: alternates(baseURL, path),
		})
	}
	return set
}

// WriteSitemap encodes set as an XML document.
func WriteSitemap(w io.Writer, set *URLSet) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encoding sitemap: %w", err)
	}
	return enc.Close()
}

func alternates(baseURL, path string) []Alternate {
	alts := make([]Alternate, 0, len(locale.Supported)+1)
	for _, loc := range locale.Supported {
		alts = append(alts, Alternate{Rel: "alternate", Hreflang: loc, Href: baseURL + locale.Path(loc, path)})
	}
	return append(alts, Alternate{Rel: "alternate", Hreflang: "x-default", Href: baseURL + path})
}

func priority(p float64) string {
	return fmt.Sprintf("%.1f", p)
}

// Robots returns robots.txt content allowing everything except the API
// and the content studio, and pointing at the sitemap.
func Robots(baseURL string) string {
	baseURL = strings.TrimRight(baseURL, "/")
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /api/\n")
	b.WriteString("Disallow: /studio/\n")
	b.WriteString("\n")
	b.WriteString("Sitemap: " + baseURL + "/sitemap.xml\n")
	return b.String()
}
