// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"net/http"

	"sciallastudio/internal/contact"
	"sciallastudio/internal/email"
)

// Client-facing error strings for the contact endpoint.
const (
	msgInvalidForm    = "Invalid form data. Please check your inputs and try again."
	msgNotConfigured  = "Email service is not configured. Please contact support."
	msgDeliveryFailed = "Failed to send emails. Please try again or contact us directly."
	msgUnexpected     = "Something went wrong. Please try again later."
)

// Submitter runs a contact submission through the intake pipeline.
type Submitter interface {
	Submit(ctx context.Context, sub contact.Submission) (contact.Outcome, error)
}

// Contact handles the lead form.
type Contact struct {
	intake Submitter
	schema *contact.Schema
}

// NewContact creates the contact handler group.
func NewContact(intake Submitter, schema *contact.Schema) *Contact {
	return &Contact{intake: intake, schema: schema}
}

type contactResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Error   string            `json:"error,omitempty"`
	Details []string          `json:"details,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Submit accepts {name, email, phone, location, projectType, message?}.
// It answers 200 once both emails are sent, 400 for invalid input and 500
// for configuration or delivery failures.
func (h *Contact) Submit(w http.ResponseWriter, r *http.Request) {
	log := logFor(r)

	var sub contact.Submission
	if err := decodeJSON(w, r, &sub); err != nil {
		log.Warn("contact submit: invalid json", "error", err)
		writeJSON(w, http.StatusBadRequest, contactResponse{Error: msgInvalidForm})
		return
	}

	outcome, err := h.intake.Submit(r.Context(), sub)
	if err == nil {
		writeJSON(w, http.StatusOK, contactResponse{Success: true, Message: outcome.Message})
		return
	}

	var (
		verr *contact.ValidationError
		derr *contact.DeliveryError
	)
	switch {
	case errors.As(err, &verr):
		log.Warn("contact submit: validation failed", "fields", verr.Fields)
		writeJSON(w, http.StatusBadRequest, contactResponse{Error: msgInvalidForm, Fields: verr.Fields})
	case errors.Is(err, email.ErrNotConfigured):
		writeJSON(w, http.StatusInternalServerError, contactResponse{Error: msgNotConfigured})
	case errors.As(err, &derr):
		writeJSON(w, http.StatusInternalServerError, contactResponse{Error: msgDeliveryFailed, Details: derr.Failed})
	default:
		log.Error("contact submit failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, contactResponse{Error: msgUnexpected})
	}
}

type schemaResponse struct {
	Fields []contact.FieldRule `json:"fields"`
}

// Schema publishes the validation rules so the form validates with the
// same ones the server enforces.
func (h *Contact) Schema(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600")
	writeJSON(w, http.StatusOK, schemaResponse{Fields: h.schema.Describe()})
}
