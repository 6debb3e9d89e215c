package locale

import "testing"

func TestNegotiate(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", "en"},
		{"es-MX,es;q=0.9,en;q=0.8", "es"},
		{"it-IT", "it"},
		{"fr-FR,fr;q=0.9", "en"},
		{"de;q=0.9,it;q=0.5", "it"},
		{"en-GB", "en"},
		{"not a header;;", "en"},
	}
	for _, tt := range tests {
		if got := Negotiate(tt.header); got != tt.want {
			t.Errorf("Negotiate(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestPath(t *testing.T) {
	tests := []struct {
		loc, path, want string
	}{
		{"en", "/about", "/about"},
		{"en", "/", "/"},
		{"es", "/about", "/es/about"},
		{"es", "/", "/es"},
		{"it", "portfolio/soho-loft", "/it/portfolio/soho-loft"},
		{"fr", "/about", "/about"},
	}
	for _, tt := range tests {
		if got := Path(tt.loc, tt.path); got != tt.want {
			t.Errorf("Path(%q, %q) = %q, want %q", tt.loc, tt.path, got, tt.want)
		}
	}
}

func TestOpenGraph(t *testing.T) {
	if got := OpenGraph("it"); got != "it_IT" {
		t.Errorf("OpenGraph(it) = %q", got)
	}
	if got := OpenGraph("en"); got != "en_US" {
		t.Errorf("OpenGraph(en) = %q", got)
	}
}
