package email

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
	"time"
)

//go:embed templates/*.html templates/*.txt
var templateFS embed.FS

const (
	clientSubject = "Thank you for contacting Scialla Studio - We'll be in touch within 24 hours"
	adminSubject  = "New Contact Form Submission - %s (%s)"

	submittedLayout = "January 2, 2006 at 3:04 PM MST"
)

var funcs = map[string]any{
	"submitted": func(t time.Time) string { return t.Format(submittedLayout) },
}

// Templates renders the client confirmation and the admin notification.
// HTML bodies escape user input; text bodies are plain.
type Templates struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

// NewTemplates parses the embedded templates.
func NewTemplates() (*Templates, error) {
	h, err := htmltemplate.New("html").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing html email templates: %w", err)
	}
	t, err := texttemplate.New("text").Funcs(funcs).ParseFS(templateFS, "templates/*.txt")
	if err != nil {
		return nil, fmt.Errorf("parsing text email templates: %w", err)
	}
	return &Templates{html: h, text: t}, nil
}

// ClientConfirmation renders the thank-you message sent to the submitter.
func (t *Templates) ClientConfirmation(data LeadData) (Rendered, error) {
	return t.render(clientSubject, "client", data)
}

// AdminNotification renders the new-lead alert sent to the studio.
func (t *Templates) AdminNotification(data LeadData) (Rendered, error) {
	return t.render(fmt.Sprintf(adminSubject, data.Name, data.Location), "admin", data)
}

func (t *Templates) render(subject, name string, data LeadData) (Rendered, error) {
	var h, txt bytes.Buffer
	if err := t.html.ExecuteTemplate(&h, name+".html", data); err != nil {
		return Rendered{}, fmt.Errorf("rendering %s html: %w", name, err)
	}
	if err := t.text.ExecuteTemplate(&txt, name+".txt", data); err != nil {
		return Rendered{}, fmt.Errorf("rendering %s text: %w", name, err)
	}
	return Rendered{Subject: subject, HTML: h.String(), Text: txt.String()}, nil
}
