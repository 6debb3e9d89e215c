// Package locale handles the site's language variants. English is the
// default and is served without a path prefix; other locales are prefixed.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Default is served unprefixed.
const Default = "en"

// Supported lists the site locales, default first.
var Supported = []string{"en", "es", "it"}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Spanish,
	language.Italian,
})

// Valid reports whether loc is a supported locale.
func Valid(loc string) bool {
	for _, s := range Supported {
		if s == loc {
			return true
		}
	}
	return false
}

// Negotiate picks the best supported locale for an Accept-Language header,
// falling back to Default.
func Negotiate(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return Supported[idx]
}

// Path returns p as seen in loc: "/about" becomes "/es/about" for Spanish
// and stays "/about" for the default locale.
func Path(loc, p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if loc == Default || !Valid(loc) {
		return p
	}
	if p == "/" {
		return "/" + loc
	}
	return "/" + loc + p
}

// OpenGraph returns the og:locale value for loc.
func OpenGraph(loc string) string {
	switch loc {
	case "es":
		return "es_ES"
	case "it":
		return "it_IT"
	default:
		return "en_US"
	}
}
