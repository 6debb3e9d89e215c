// Package email renders the lead-intake messages and delivers them
// through the Resend API.
package email

import (
	"errors"
	"strings"
	"time"
)

// ErrNotConfigured means no delivery API key is set.
var ErrNotConfigured = errors.New("email: delivery not configured")

// Message is one outbound email.
type Message struct {
	From    string
	To      []string
	CC      []string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// Contact is a mailing-list entry.
type Contact struct {
	Email     string
	FirstName string
	LastName  string
}

// Rendered is a subject plus both bodies.
type Rendered struct {
	Subject string
	HTML    string
	Text    string
}

// LeadData is what the templates see. Location and ProjectType are the
// display labels, not the form values.
type LeadData struct {
	Name        string
	Email       string
	Phone       string
	Location    string
	ProjectType string
	Message     string
	SubmittedAt time.Time
}

// SplitName returns the first whitespace-separated token as the first name
// and the rest as the last name.
func SplitName(name string) (first, last string) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}
