// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"sciallastudio/internal/email"
)

// SuccessMessage is returned to the submitter once both emails are out.
const SuccessMessage = "Form submitted successfully. We'll contact you within 24 hours!"

// Delivery legs, as reported in DeliveryError.Failed.
const (
	LegClient = "client confirmation"
	LegAdmin  = "admin notification"
)

var (
	// ErrRender means a template failed; the request cannot proceed.
	ErrRender = errors.New("rendering email templates failed")
	// ErrDelivery matches every *DeliveryError.
	ErrDelivery = errors.New("email delivery failed")
)

// DeliveryError reports which legs of the dispatch failed.
type DeliveryError struct {
	Failed []string
	Errs   []error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("email delivery failed: %s", strings.Join(e.Failed, ", "))
}

func (e *DeliveryError) Is(target error) bool {
	return target == ErrDelivery
}

func (e *DeliveryError) Unwrap() []error {
	return e.Errs
}

// Mailer delivers messages and registers audience contacts.
type Mailer interface {
	Send(ctx context.Context, m email.Message) (string, error)
	CreateContact(ctx context.Context, audienceID string, c email.Contact) error
}

// IntakeConfig addresses the two messages.
type IntakeConfig struct {
	ClientFrom string
	AdminFrom  string
	AdminTo    string
	// CC receives a copy of the client confirmation.
	CC []string
	// AudienceID enables mailing-list registration when set.
	AudienceID string
}

// Outcome is the successful result of Submit.
type Outcome struct {
	Message string
}

// Intake runs a submission through validate → render → dispatch → enrich.
type Intake struct {
	schema    *Schema
	templates *email.Templates
	mailer    Mailer
	config    IntakeConfig
	now       func() time.Time
}

// NewIntake wires the pipeline. A nil mailer leaves the intake unconfigured:
// every Submit fails with email.ErrNotConfigured.
func NewIntake(schema *Schema, templates *email.Templates, mailer Mailer, cfg IntakeConfig) *Intake {
	return &Intake{
		schema:    schema,
		templates: templates,
		mailer:    mailer,
		config:    cfg,
		now:       time.Now,
	}
}

// Configured reports whether a mailer is available.
func (in *Intake) Configured() bool {
	return in.mailer != nil
}

// Submit processes one contact form submission. Both emails are sent
// concurrently and both are awaited; if either fails the submission fails
// with a *DeliveryError. Nothing is retried.
func (in *Intake) Submit(ctx context.Context, sub Submission) (Outcome, error) {
	if !in.Configured() {
		slog.Error("contact: email delivery is not configured")
		return Outcome{}, email.ErrNotConfigured
	}

	if err := in.schema.Validate(&sub); err != nil {
		return Outcome{}, err
	}

	slog.Info("contact: processing submission", "email", sub.Email, "location", sub.Location, "project_type", sub.ProjectType)

	data := email.LeadData{
		Name:        sub.Name,
		Email:       sub.Email,
		Phone:       sub.Phone,
		Location:    LocationLabel(sub.Location),
		ProjectType: ProjectTypeLabel(sub.ProjectType),
		Message:     sub.Message,
		SubmittedAt: in.now(),
	}
	client, err := in.templates.ClientConfirmation(data)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %w", ErrRender, err)
	}
	admin, err := in.templates.AdminNotification(data)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %w", ErrRender, err)
	}

	messages := [2]email.Message{
		{
			From:    in.config.ClientFrom,
			To:      []string{sub.Email},
			CC:      in.config.CC,
			Subject: client.Subject,
			HTML:    client.HTML,
			Text:    client.Text,
		},
		{
			From:    in.config.AdminFrom,
			To:      []string{in.config.AdminTo},
			ReplyTo: sub.Email,
			Subject: admin.Subject,
			HTML:    admin.HTML,
			Text:    admin.Text,
		},
	}
	legs := [2]string{LegClient, LegAdmin}

	// A client disconnect must not abandon a send halfway.
	sendCtx := context.WithoutCancel(ctx)
	var (
		wg   sync.WaitGroup
		errs [2]error
	)
	for i := range messages {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id, err := in.mailer.Send(sendCtx, messages[i])
			if err != nil {
				errs[i] = err
				return
			}
			slog.Info("contact: email sent", "leg", legs[i], "id", id)
		}(i)
	}
	wg.Wait()

	var derr DeliveryError
	for i, err := range errs {
		if err != nil {
			slog.Error("contact: email send failed", "leg", legs[i], "error", err)
			derr.Failed = append(derr.Failed, legs[i])
			derr.Errs = append(derr.Errs, err)
		}
	}
	if len(derr.Failed) > 0 {
		return Outcome{}, &derr
	}

	in.enrich(sendCtx, sub)
	return Outcome{Message: SuccessMessage}, nil
}

// enrich registers the submitter in the mailing-list audience. Failures are
// logged only: both parties already have their email.
func (in *Intake) enrich(ctx context.Context, sub Submission) {
	if in.config.AudienceID == "" {
		slog.Debug("contact: no audience configured, skipping contact registration")
		return
	}
	first, last := email.SplitName(sub.Name)
	if first == "" {
		first = sub.Name
	}
	err := in.mailer.CreateContact(ctx, in.config.AudienceID, email.Contact{
		Email:     sub.Email,
		FirstName: first,
		LastName:  last,
	})
	if err != nil {
		slog.Warn("contact: saving audience contact failed", "email", sub.Email, "error", err)
		return
	}
	slog.Info("contact: audience contact saved", "email", sub.Email)
}
