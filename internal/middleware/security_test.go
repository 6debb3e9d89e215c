package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func serveSecure(production bool) *httptest.ResponseRecorder {
	handler := SecureHeaders(production)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	return rr
}

func TestSecureHeaders(t *testing.T) {
	rr := serveSecure(false)

	tests := []struct {
		header string
		want   string
	}{
		{"X-Content-Type-Options", "nosniff"},
		{"X-Frame-Options", "SAMEORIGIN"},
		{"X-XSS-Protection", "0"},
		{"Referrer-Policy", "strict-origin-when-cross-origin"},
		{"Permissions-Policy", "camera=(), microphone=(), geolocation=()"},
		{"Strict-Transport-Security", ""},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got := rr.Header().Get(tt.header)
			if got != tt.want {
				t.Errorf("%s: got %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestSecureHeadersProductionHSTS(t *testing.T) {
	rr := serveSecure(true)
	if got := rr.Header().Get("Strict-Transport-Security"); got != hsts {
		t.Errorf("HSTS: got %q, want %q", got, hsts)
	}
}
