package contact

import "sciallastudio/internal/models"

// ProjectType is the kind of engagement a lead asks about.
type ProjectType string

const (
	ProjectFullHome     ProjectType = "full-home"
	ProjectKitchen      ProjectType = "kitchen"
	ProjectBathroom     ProjectType = "bathroom"
	ProjectLivingSpaces ProjectType = "living-spaces"
	ProjectCommercial   ProjectType = "commercial"
	ProjectConsultation ProjectType = "consultation"
)

// Option is one selectable value with its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ProjectTypeOptions lists project types in form order.
var ProjectTypeOptions = []Option{
	{Value: string(ProjectFullHome), Label: "Full Home Design"},
	{Value: string(ProjectKitchen), Label: "Kitchen Renovation"},
	{Value: string(ProjectBathroom), Label: "Bathroom Design"},
	{Value: string(ProjectLivingSpaces), Label: "Living Spaces"},
	{Value: string(ProjectCommercial), Label: "Commercial Space"},
	{Value: string(ProjectConsultation), Label: "Design Consultation"},
}

// LocationOptions lists the served cities in form order.
var LocationOptions = locationOptions()

func locationOptions() []Option {
	opts := make([]Option, 0, len(models.Locations))
	for _, l := range models.Locations {
		opts = append(opts, Option{Value: string(l), Label: l.Name()})
	}
	return opts
}

// ProjectTypeLabel returns the display label for t, or t itself if unknown.
func ProjectTypeLabel(t ProjectType) string {
	return labelOf(ProjectTypeOptions, string(t))
}

// LocationLabel returns the display name for l, or l itself if unknown.
func LocationLabel(l models.LocationSlug) string {
	return labelOf(LocationOptions, string(l))
}

func labelOf(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

func hasOption(opts []Option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}
