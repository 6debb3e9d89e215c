package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lead() LeadData {
	return LeadData{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "+15551234567",
		Location:    "Tampa",
		ProjectType: "Kitchen Renovation",
		SubmittedAt: time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC),
	}
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		in          string
		first, last string
	}{
		{"Jane Doe", "Jane", "Doe"},
		{"Mary Anne van der Berg", "Mary", "Anne van der Berg"},
		{"Cher", "Cher", ""},
		{"  Jane   Doe  ", "Jane", "Doe"},
		{"", "", ""},
	}
	for _, tt := range tests {
		first, last := SplitName(tt.in)
		if first != tt.first || last != tt.last {
			t.Errorf("SplitName(%q) = (%q, %q), want (%q, %q)", tt.in, first, last, tt.first, tt.last)
		}
	}
}

func TestClientConfirmation(t *testing.T) {
	tpl, err := NewTemplates()
	require.NoError(t, err)

	r, err := tpl.ClientConfirmation(lead())
	require.NoError(t, err)

	assert.Equal(t, "Thank you for contacting Scialla Studio - We'll be in touch within 24 hours", r.Subject)
	for _, body := range []string{r.HTML, r.Text} {
		assert.Contains(t, body, "Jane Doe")
		assert.Contains(t, body, "Tampa")
		assert.Contains(t, body, "Kitchen Renovation")
		assert.Contains(t, body, "What happens next?")
		assert.NotContains(t, body, "Additional Details")
	}
}

func TestClientConfirmationIncludesMessage(t *testing.T) {
	tpl, err := NewTemplates()
	require.NoError(t, err)

	data := lead()
	data.Message = "Open shelving, no upper cabinets."
	r, err := tpl.ClientConfirmation(data)
	require.NoError(t, err)
	assert.Contains(t, r.HTML, "Additional Details")
	assert.Contains(t, r.Text, "Additional Details: Open shelving, no upper cabinets.")
}

func TestAdminNotification(t *testing.T) {
	tpl, err := NewTemplates()
	require.NoError(t, err)

	data := lead()
	data.Message = "Call after 5pm"
	r, err := tpl.AdminNotification(data)
	require.NoError(t, err)

	assert.Equal(t, "New Contact Form Submission - Jane Doe (Tampa)", r.Subject)
	assert.Contains(t, r.HTML, `href="mailto:jane@example.com"`)
	assert.Contains(t, r.HTML, `href="tel:&#43;15551234567"`)
	assert.Contains(t, r.HTML, "Kitchen Renovation")
	assert.Contains(t, r.HTML, "Call after 5pm")
	assert.Contains(t, r.Text, "Submitted: March 4, 2026 at 3:30 PM UTC")
	assert.Contains(t, r.Text, "Message: Call after 5pm")
}

func TestTemplatesEscapeHTML(t *testing.T) {
	tpl, err := NewTemplates()
	require.NoError(t, err)

	data := lead()
	data.Name = "<script>alert(1)</script>"
	data.Message = "<b>bold</b>"
	r, err := tpl.AdminNotification(data)
	require.NoError(t, err)

	assert.NotContains(t, r.HTML, "<script>")
	assert.Contains(t, r.HTML, "&lt;script&gt;")
	assert.NotContains(t, r.HTML, "<b>bold</b>")
	assert.Contains(t, r.Text, "<b>bold</b>")
}

func TestNewResendClientWithoutKey(t *testing.T) {
	c, err := NewResendClient(ResendConfig{})
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = NewResendClient(ResendConfig{APIKey: "re_test"})
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, DefaultResendBaseURL, c.client.BaseURL.String())
}

func TestNewResendClientBadBaseURL(t *testing.T) {
	_, err := NewResendClient(ResendConfig{APIKey: "re_test", BaseURL: "://nope"})
	require.Error(t, err)
}

func newResendTestClient(t *testing.T, baseURL string) *ResendClient {
	t.Helper()
	c, err := NewResendClient(ResendConfig{APIKey: "re_test", BaseURL: baseURL})
	require.NoError(t, err)
	return c
}

func TestResendSend(t *testing.T) {
	var got map[string]any
	var auth, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		path = r.URL.Path
		json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"}`))
	}))
	defer srv.Close()

	c := newResendTestClient(t, srv.URL)
	id, err := c.Send(context.Background(), Message{
		From:    "Scialla Studio <contact@sciallastudioid.com>",
		To:      []string{"jane@example.com"},
		CC:      []string{"team@sciallastudioid.com"},
		ReplyTo: "jane@example.com",
		Subject: "Hello",
		HTML:    "<p>Hi</p>",
		Text:    "Hi",
	})
	require.NoError(t, err)

	assert.Equal(t, "49a3999c-0ce1-4ea6-ab68-afcd6dc2e794", id)
	assert.Equal(t, "Bearer re_test", auth)
	assert.Equal(t, "/emails", path)
	assert.Equal(t, []any{"jane@example.com"}, got["to"])
	assert.Equal(t, []any{"team@sciallastudioid.com"}, got["cc"])
	assert.Equal(t, "jane@example.com", got["reply_to"])
	assert.Equal(t, "<p>Hi</p>", got["html"])
	assert.Equal(t, "Hi", got["text"])
}

func TestResendSendAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid ` + "`to`" + ` field."}`))
	}))
	defer srv.Close()

	c := newResendTestClient(t, srv.URL)
	_, err := c.Send(context.Background(), Message{To: []string{"x"}})
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "resend send:"))
	assert.Contains(t, err.Error(), "Invalid `to` field.")
}

func TestResendCreateContact(t *testing.T) {
	var got map[string]any
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"object":"contact","id":"c1"}`))
	}))
	defer srv.Close()

	c := newResendTestClient(t, srv.URL)
	err := c.CreateContact(context.Background(), "aud_123", Contact{Email: "jane@example.com", FirstName: "Jane", LastName: "Doe"})
	require.NoError(t, err)

	assert.Equal(t, "/audiences/aud_123/contacts", path)
	assert.Equal(t, "jane@example.com", got["email"])
	assert.Equal(t, "Jane", got["first_name"])
	assert.Equal(t, "Doe", got["last_name"])
}

func TestResendCreateContactNeedsAudience(t *testing.T) {
	c := newResendTestClient(t, "http://127.0.0.1:1")
	err := c.CreateContact(context.Background(), "", Contact{Email: "jane@example.com"})
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "resend create contact:"))
}

func TestResendNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := newResendTestClient(t, url)
	_, err := c.Send(context.Background(), Message{})
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "resend send:"))
}
