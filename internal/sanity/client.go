// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package sanity is a read-only client for the Sanity query API holding
// the studio's projects and cities.
package sanity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sethvargo/go-retry"

	"sciallastudio/internal/models"
	"sciallastudio/internal/slug"
)

// ErrNotConfigured is returned by New when no project id is set.
var ErrNotConfigured = errors.New("sanity: project id not configured")

const (
	defaultRetries   = 2
	defaultRetryBase = 200 * time.Millisecond
	maxRetryDelay    = 2 * time.Second
)

// Config selects the project, dataset and API version to query.
type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	UseCDN     bool
	// BaseURL overrides the derived API host (tests, proxies).
	BaseURL string
	// Retries bounds how often a rate-limited or failed query is repeated.
	// Zero selects the default; negative disables retries.
	Retries int
	// RetryBase is the first backoff delay, doubled on each retry.
	RetryBase time.Duration
}

// Client issues GROQ queries over HTTP.
type Client struct {
	config Config
	http   *http.Client
}

// New creates a client. Dataset and API version default to "production"
// and "2024-01-01".
func New(cfg Config) (*Client, error) {
	if cfg.ProjectID == "" {
		return nil, ErrNotConfigured
	}
	if cfg.Dataset == "" {
		cfg.Dataset = "production"
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2024-01-01"
	}
	if cfg.BaseURL == "" {
		host := "api"
		if cfg.UseCDN {
			host = "apicdn"
		}
		cfg.BaseURL = fmt.Sprintf("https://%s.%s.sanity.io", cfg.ProjectID, host)
	}
	if cfg.Retries == 0 {
		cfg.Retries = defaultRetries
	}
	if cfg.RetryBase <= 0 {
		cfg.RetryBase = defaultRetryBase
	}
	return &Client{
		config: cfg,
		http:   &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// backoff is built per query; go-retry backoffs are stateful.
func (c *Client) backoff() retry.Backoff {
	retries := uint64(max(c.config.Retries, 0))
	b := retry.NewExponential(c.config.RetryBase)
	b = retry.WithCappedDuration(maxRetryDelay, b)
	return retry.WithMaxRetries(retries, b)
}

// Fetch runs query with params bound as $name and decodes the result into
// out. A null result leaves out untouched. Network failures, 429 and 5xx
// answers are retried with exponential backoff.
func (c *Client) Fetch(ctx context.Context, query string, params map[string]any, out any) error {
	values := url.Values{}
	values.Set("query", query)
	for name, v := range params {
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("sanity param %s: %w", name, err)
		}
		values.Set("$"+name, string(encoded))
	}

	endpoint := fmt.Sprintf("%s/v%s/data/query/%s?%s",
		c.config.BaseURL, c.config.APIVersion, url.PathEscape(c.config.Dataset), values.Encode())

	body, err := retry.DoValue(ctx, c.backoff(), func(ctx context.Context) ([]byte, error) {
		return c.get(ctx, endpoint)
	})
	if err != nil {
		return err
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("sanity unmarshal: %w", err)
	}
	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("sanity decode result: %w", err)
	}
	return nil
}

// get performs one query request. Errors worth repeating are marked
// retryable.
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("sanity request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		err = fmt.Errorf("sanity http: %w", err)
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, retry.RetryableError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, retry.RetryableError(fmt.Errorf("sanity read body: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		err := apiError(resp.StatusCode, body)
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			return nil, retry.RetryableError(err)
		}
		return nil, err
	}
	return body, nil
}

func apiError(status int, body []byte) error {
	var apiErr errorResponse
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Description != "" {
		return fmt.Errorf("sanity API error (status %d): %s", status, apiErr.Error.Description)
	}
	return fmt.Errorf("sanity API error (status %d): %s", status, string(body))
}

type errorResponse struct {
	Error struct {
		Description string `json:"description"`
		Type        string `json:"type"`
	} `json:"error"`
}

// Projects returns every project, newest first.
func (c *Client) Projects(ctx context.Context) ([]models.Project, error) {
	var docs []projectDoc
	if err := c.Fetch(ctx, ProjectsQuery, nil, &docs); err != nil {
		return nil, fmt.Errorf("fetching projects: %w", err)
	}
	return projectModels(docs), nil
}

// ProjectsByCity returns the projects in the city with the given slug.
func (c *Client) ProjectsByCity(ctx context.Context, city string) ([]models.Project, error) {
	var docs []projectDoc
	if err := c.Fetch(ctx, ProjectsByCityQuery, map[string]any{"city": city}, &docs); err != nil {
		return nil, fmt.Errorf("fetching projects for city %q: %w", city, err)
	}
	return projectModels(docs), nil
}

// LatestProjects returns up to limit of the newest projects. Limits within
// LatestWindow use the lighter homepage query.
func (c *Client) LatestProjects(ctx context.Context, limit int) ([]models.Project, error) {
	if limit > LatestWindow {
		all, err := c.Projects(ctx)
		if err != nil {
			return nil, err
		}
		return all[:min(limit, len(all))], nil
	}
	var docs []projectDoc
	if err := c.Fetch(ctx, LatestProjectsQuery, nil, &docs); err != nil {
		return nil, fmt.Errorf("fetching latest projects: %w", err)
	}
	projects := projectModels(docs)
	return projects[:min(limit, len(projects))], nil
}

// Project returns the project with the given slug, or nil if none exists.
func (c *Client) Project(ctx context.Context, slug string) (*models.Project, error) {
	var doc *projectDoc
	if err := c.Fetch(ctx, ProjectQuery, map[string]any{"slug": slug}, &doc); err != nil {
		return nil, fmt.Errorf("fetching project %q: %w", slug, err)
	}
	if doc == nil {
		return nil, nil
	}
	return validProject(doc), nil
}

// ProjectSlugs returns every project slug.
func (c *Client) ProjectSlugs(ctx context.Context) ([]string, error) {
	var rows []struct {
		Slug string `json:"slug"`
	}
	if err := c.Fetch(ctx, ProjectSlugsQuery, nil, &rows); err != nil {
		return nil, fmt.Errorf("fetching project slugs: %w", err)
	}
	slugs := make([]string, 0, len(rows))
	for _, r := range rows {
		if slug.Valid(r.Slug) {
			slugs = append(slugs, r.Slug)
		}
	}
	return slugs, nil
}

// Cities returns every city ordered by name.
func (c *Client) Cities(ctx context.Context) ([]models.City, error) {
	var docs []cityDoc
	if err := c.Fetch(ctx, CitiesQuery, nil, &docs); err != nil {
		return nil, fmt.Errorf("fetching cities: %w", err)
	}
	cities := make([]models.City, 0, len(docs))
	for i := range docs {
		if city := validCity(&docs[i]); city != nil {
			cities = append(cities, *city)
		}
	}
	return cities, nil
}

// City returns the city with the given slug and its newest projects, or
// nil if none exists.
func (c *Client) City(ctx context.Context, slug string) (*models.City, error) {
	var doc *cityDoc
	if err := c.Fetch(ctx, CityQuery, map[string]any{"slug": slug}, &doc); err != nil {
		return nil, fmt.Errorf("fetching city %q: %w", slug, err)
	}
	if doc == nil {
		return nil, nil
	}
	return validCity(doc), nil
}
