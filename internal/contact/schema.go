// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package contact implements lead intake: one declarative schema for the
// contact form, and the pipeline that turns a valid submission into a
// client confirmation and an admin notification.
package contact

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"sciallastudio/internal/models"
)

// ErrInvalidSubmission matches every *ValidationError.
var ErrInvalidSubmission = errors.New("invalid form data")

// phonePattern accepts an optional leading plus and up to 16 digits with
// no leading zero.
const phonePattern = `^\+?[1-9]\d{0,15}$`

var phoneRegex = regexp.MustCompile(phonePattern)

// Submission is the contact form payload.
type Submission struct {
	Name        string              `json:"name" validate:"required,min=2,max=50"`
	Email       string              `json:"email" validate:"required,email"`
	Phone       string              `json:"phone" validate:"required,min=10,phone"`
	Location    models.LocationSlug `json:"location" validate:"required,location"`
	ProjectType ProjectType         `json:"projectType" validate:"required,projecttype"`
	Message     string              `json:"message,omitempty" validate:"max=1000"`
}

// normalize trims surrounding whitespace from every field.
func (s *Submission) normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Phone = strings.TrimSpace(s.Phone)
	s.Location = models.LocationSlug(strings.TrimSpace(string(s.Location)))
	s.ProjectType = ProjectType(strings.TrimSpace(string(s.ProjectType)))
	s.Message = strings.TrimSpace(s.Message)
}

// messages maps field → failed rule → what the user is told.
var messages = map[string]map[string]string{
	"name": {
		"required": "Name must be at least 2 characters",
		"min":      "Name must be at least 2 characters",
		"max":      "Name must be less than 50 characters",
	},
	"email": {
		"required": "Please enter a valid email address",
		"email":    "Please enter a valid email address",
	},
	"phone": {
		"required": "Phone number must be at least 10 digits",
		"min":      "Phone number must be at least 10 digits",
		"phone":    "Please enter a valid phone number",
	},
	"location": {
		"required": "Please select a project location",
		"location": "Please select a project location",
	},
	"projectType": {
		"required":    "Please select a project type",
		"projecttype": "Please select a project type",
	},
	"message": {
		"max": "Message must be less than 1000 characters",
	},
}

// ValidationError carries one message per failing field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	slices.Sort(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "invalid form data: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidSubmission
}

// Schema validates submissions and describes its own rules so the form
// layer can apply the same ones.
type Schema struct {
	v *validator.Validate
}

// NewSchema builds the validator with the form's custom rules.
func NewSchema() *Schema {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("location", func(fl validator.FieldLevel) bool {
		return hasOption(LocationOptions, fl.Field().String())
	})
	v.RegisterValidation("projecttype", func(fl validator.FieldLevel) bool {
		return hasOption(ProjectTypeOptions, fl.Field().String())
	})

	return &Schema{v: v}
}

// Validate trims s in place and checks it. Failures are a *ValidationError.
func (s *Schema) Validate(sub *Submission) error {
	sub.normalize()
	err := s.v.Struct(sub)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating submission: %w", err)
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if _, seen := fields[name]; seen {
			continue
		}
		msg, ok := messages[name][fe.Tag()]
		if !ok {
			msg = "Invalid value"
		}
		fields[name] = msg
	}
	return &ValidationError{Fields: fields}
}

// FieldRule is the client-facing description of one field's constraints.
type FieldRule struct {
	Name      string            `json:"name"`
	Required  bool              `json:"required"`
	MinLength int               `json:"minLength,omitempty"`
	MaxLength int               `json:"maxLength,omitempty"`
	Format    string            `json:"format,omitempty"`
	Pattern   string            `json:"pattern,omitempty"`
	Options   []Option          `json:"options,omitempty"`
	Messages  map[string]string `json:"messages"`
}

// Describe derives the field rules from the Submission validate tags, so
// the description cannot drift from what Validate enforces.
func (s *Schema) Describe() []FieldRule {
	t := reflect.TypeFor[Submission]()
	rules := make([]FieldRule, 0, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		rule := FieldRule{Name: name, Messages: map[string]string{}}

		for _, tag := range strings.Split(f.Tag.Get("validate"), ",") {
			key, param, _ := strings.Cut(tag, "=")
			switch key {
			case "required":
				rule.Required = true
			case "min":
				rule.MinLength, _ = strconv.Atoi(param)
			case "max":
				rule.MaxLength, _ = strconv.Atoi(param)
			case "email":
				rule.Format = "email"
			case "phone":
				rule.Pattern = phonePattern
			case "location":
				rule.Options = LocationOptions
			case "projecttype":
				rule.Options = ProjectTypeOptions
			}
			if msg, ok := messages[name][key]; ok {
				rule.Messages[key] = msg
			}
		}
		rules = append(rules, rule)
	}
	return rules
}
