// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON API the page layer and the contact
// form talk to, plus the sitemap and robots file.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"sciallastudio/internal/locale"
	"sciallastudio/internal/middleware"
	"sciallastudio/internal/seo"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 64 << 10

var (
	errInvalidLimit  = errors.New("invalid limit")
	errInvalidOffset = errors.New("invalid offset")
)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("encode response failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// decodeJSON reads a single JSON object from the request body. Bodies
// larger than maxBodyBytes are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain a single JSON object")
	}
	return nil
}

// parseLimitOffset reads ?limit and ?offset. An absent limit yields def;
// limits above maxLimit are clamped.
func parseLimitOffset(values url.Values, def, maxLimit int) (limit, offset int, err error) {
	limit = def
	if raw := strings.TrimSpace(values.Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return 0, 0, errInvalidLimit
		}
		limit = n
	}
	if raw := strings.TrimSpace(values.Get("offset")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return 0, 0, errInvalidOffset
		}
		offset = n
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return limit, offset, nil
}

// requestLocale prefers an explicit ?locale, then Accept-Language.
func requestLocale(r *http.Request) string {
	if loc := r.URL.Query().Get("locale"); locale.Valid(loc) {
		return loc
	}
	return locale.Negotiate(r.Header.Get("Accept-Language"))
}

func seoOptions(siteURL string, r *http.Request) seo.Options {
	return seo.Options{BaseURL: siteURL, OGLocale: locale.OpenGraph(requestLocale(r))}
}

// logFor returns the default logger tagged with the request id.
func logFor(r *http.Request) *slog.Logger {
	return slog.With("request_id", middleware.RequestIDFromContext(r.Context()))
}
