package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/sitemap.xml", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/xml; charset=utf-8", rr.Header().Get("Content-Type"))

	body := rr.Body.String()
	assert.True(t, strings.HasPrefix(body, "<?xml"))
	// 21 routes in three locales, then the five projects.
	assert.Equal(t, 21*3+5, strings.Count(body, "<url>"))
	assert.Contains(t, body, "<loc>"+testSiteURL+"/es/interior-design-tampa</loc>")
	assert.Contains(t, body, "<loc>"+testSiteURL+"/portfolio/bayshore-kitchen</loc>")
	assert.Contains(t, body, "<lastmod>2025-05-30</lastmod>")
}

func TestSitemapEndpointStoreDown(t *testing.T) {
	env := newTestEnv(t)
	env.source.Fail(assert.AnError)

	rr := env.do(t, http.MethodGet, "/sitemap.xml", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 21*3, strings.Count(rr.Body.String(), "<url>"))
}

func TestRobotsEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/robots.txt", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Sitemap: "+testSiteURL+"/sitemap.xml")
}

func TestLocaleEndpoint(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name   string
		target string
		accept string
		want   localeResponse
	}{
		{
			name:   "default",
			target: "/api/locale",
			want:   localeResponse{Locale: "en", OGLocale: "en_US"},
		},
		{
			name:   "accept-language",
			target: "/api/locale?path=/about",
			accept: "it-IT,it;q=0.9,en;q=0.5",
			want:   localeResponse{Locale: "it", OGLocale: "it_IT", Path: "/it/about"},
		},
		{
			name:   "explicit locale wins",
			target: "/api/locale?locale=es&path=/",
			accept: "it",
			want:   localeResponse{Locale: "es", OGLocale: "es_ES", Path: "/es"},
		},
		{
			name:   "unsupported falls back",
			target: "/api/locale",
			accept: "de-DE",
			want:   localeResponse{Locale: "en", OGLocale: "en_US"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rr = env.do(t, http.MethodGet, tt.target, "")
			if tt.accept != "" {
				rr = env.do(t, http.MethodGet, tt.target, "", "Accept-Language", tt.accept)
			}
			require.Equal(t, http.StatusOK, rr.Code)
			got := decode[localeResponse](t, rr)
			tt.want.Supported = []string{"en", "es", "it"}
			assert.Equal(t, tt.want, got)
		})
	}
}
