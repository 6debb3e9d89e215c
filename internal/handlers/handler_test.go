// handler_test.go provides the shared fixtures for handler tests: a chi
// router over an in-memory portfolio and a recording mailer.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"sciallastudio/internal/contact"
	"sciallastudio/internal/content"
	"sciallastudio/internal/content/contenttest"
	"sciallastudio/internal/email"
)

const testSiteURL = "https://sciallastudioid.com"

// recordingMailer captures sends; failTo makes sends to that address fail.
type recordingMailer struct {
	mu       sync.Mutex
	sent     []email.Message
	contacts []email.Contact
	failTo   string
}

func (m *recordingMailer) Send(_ context.Context, msg email.Message) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failTo != "" && msg.To[0] == m.failTo {
		return "", errors.New("provider rejected message")
	}
	m.sent = append(m.sent, msg)
	return "msg-" + msg.To[0], nil
}

func (m *recordingMailer) CreateContact(_ context.Context, _ string, c email.Contact) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contacts = append(m.contacts, c)
	return nil
}

type testEnv struct {
	router chi.Router
	source *contenttest.Source
	mailer *recordingMailer
}

func newIntake(t *testing.T, mailer contact.Mailer) *contact.Intake {
	t.Helper()
	tmpl, err := email.NewTemplates()
	require.NoError(t, err)
	return contact.NewIntake(contact.NewSchema(), tmpl, mailer, contact.IntakeConfig{
		ClientFrom: "Scialla Studio <contact@sciallastudioid.com>",
		AdminFrom:  "Website Contact Form <contact@sciallastudioid.com>",
		AdminTo:    "info@sciallastudioid.com",
		AudienceID: "aud_123",
	})
}

// newTestEnv wires the handlers onto a router the same way the
// application router does, minus middleware.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		source: contenttest.New(contenttest.Portfolio(), contenttest.Cities()),
		mailer: &recordingMailer{},
	}
	svc := content.NewService(env.source)
	ch := NewContent(svc, testSiteURL)
	site := NewSite(svc, testSiteURL)
	contactH := NewContact(newIntake(t, env.mailer), contact.NewSchema())

	r := chi.NewRouter()
	r.Get("/api/projects", ch.Projects)
	r.Get("/api/projects/latest", ch.Latest)
	r.Get("/api/projects/slugs", ch.Slugs)
	r.Get("/api/projects/categories", ch.Categories)
	r.Get("/api/projects/categories/{category}", ch.ByCategory)
	r.Get("/api/projects/stats", ch.Stats)
	r.Get("/api/projects/{slug}", ch.Project)
	r.Get("/api/portfolio", ch.Portfolio)
	r.Get("/api/cities", ch.Cities)
	r.Get("/api/cities/{slug}", ch.City)
	r.Get("/api/locale", site.Locale)
	r.Post("/api/contact", contactH.Submit)
	r.Get("/api/contact/schema", contactH.Schema)
	r.Get("/sitemap.xml", site.Sitemap)
	r.Get("/robots.txt", site.Robots)
	env.router = r
	return env
}

func (e *testEnv) do(t *testing.T, method, target string, body string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}
