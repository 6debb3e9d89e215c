// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category is a portfolio tag from the fixed list offered by the content
// studio. A project carries one or more of them.
type Category string

const (
	CategoryKitchenDesign  Category = "kitchen-design"
	CategoryBathroomDesign Category = "bathroom-design"
	CategoryLivingRoom     Category = "living-room"
	CategoryBedroom        Category = "bedroom"
	CategoryCommercial     Category = "commercial"
	CategoryFullHome       Category = "full-home"
	CategoryLuxury         Category = "luxury"
	CategoryModern         Category = "modern"
	CategoryTraditional    Category = "traditional"
)

// Categories lists every known category in studio display order.
var Categories = []Category{
	CategoryKitchenDesign,
	CategoryBathroomDesign,
	CategoryLivingRoom,
	CategoryBedroom,
	CategoryCommercial,
	CategoryFullHome,
	CategoryLuxury,
	CategoryModern,
	CategoryTraditional,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Label returns the human-readable name, e.g. "kitchen-design" → "Kitchen Design".
// Unknown tags are humanized the same way so legacy values still render.
func (c Category) Label() string {
	return Humanize(string(c))
}

// Humanize turns a hyphenated slug into title-cased words. A Caser keeps
// state, so one is built per call.
func Humanize(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(strings.TrimSpace(s), "-", " "))
}

// LocationSlug identifies one of the cities the studio operates in.
type LocationSlug string

const (
	LocationOrlando    LocationSlug = "orlando"
	LocationTampa      LocationSlug = "tampa"
	LocationNYC        LocationSlug = "nyc"
	LocationLosAngeles LocationSlug = "los-angeles"
)

// Locations lists the served cities.
var Locations = []LocationSlug{LocationOrlando, LocationTampa, LocationNYC, LocationLosAngeles}

var locationNames = map[LocationSlug]string{
	LocationOrlando:    "Orlando",
	LocationTampa:      "Tampa",
	LocationNYC:        "New York City",
	LocationLosAngeles: "Los Angeles",
}

// Valid reports whether l is a served city.
func (l LocationSlug) Valid() bool {
	_, ok := locationNames[l]
	return ok
}

// Name returns the city's display name. Unknown slugs are humanized.
func (l LocationSlug) Name() string {
	if name, ok := locationNames[l]; ok {
		return name
	}
	return Humanize(string(l))
}

// BudgetRange is the budget bracket recorded in a project's details.
type BudgetRange string

const (
	BudgetUnder50k  BudgetRange = "under-50k"
	Budget50to100k  BudgetRange = "50k-100k"
	Budget100to250k BudgetRange = "100k-250k"
	Budget250kPlus  BudgetRange = "250k-plus"
)

var budgetLabels = map[BudgetRange]string{
	BudgetUnder50k:  "Under $50k",
	Budget50to100k:  "$50k - $100k",
	Budget100to250k: "$100k - $250k",
	Budget250kPlus:  "$250k+",
}

// Label returns the display form of the bracket, or the raw value if unknown.
func (b BudgetRange) Label() string {
	if label, ok := budgetLabels[b]; ok {
		return label
	}
	return string(b)
}
