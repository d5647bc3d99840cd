package domain

import (
	"encoding/json"
	"time"
)

// PlaceholderImage marks a view with no usable content image. Consumers render
// their own placeholder asset for it instead of a broken reference.
const PlaceholderImage = "placeholder"

// MergedView is the per-request combination of one canonical record and its
// locale-matched content. It is never persisted and keeps no pointers back
// into either source beyond the identifiers needed for linking.
type MergedView struct {
	ID     string `json:"id"`
	Kind   Kind   `json:"kind"`
	Slug   string `json:"slug"`
	Locale string `json:"locale"`

	Title            string `json:"title"`
	Tagline          string `json:"tagline"`
	ShortDescription string `json:"shortDescription"`
	ImageURL         string `json:"imageUrl"`
	DetailURL        string `json:"detailUrl"`
	Featured         bool   `json:"featured,omitempty"`
	HasContent       bool   `json:"hasContent"`

	Location  string     `json:"location"`
	Category  string     `json:"category"`
	Status    string     `json:"status"`
	Price     float64    `json:"price"`
	Capacity  int        `json:"capacity"`
	Bedrooms  int        `json:"bedrooms,omitempty"`
	Bathrooms int        `json:"bathrooms,omitempty"`
	Area      int        `json:"area,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Amenities []string   `json:"amenities,omitempty"`

	// Content-authored sections; omitted entirely when the content record
	// does not supply them.
	Description  json.RawMessage `json:"description,omitempty"`
	Images       []Image         `json:"images,omitempty"`
	Highlights   []Highlight     `json:"highlights,omitempty"`
	Included     []string        `json:"included,omitempty"`
	NotIncluded  []string        `json:"notIncluded,omitempty"`
	Rules        []HouseRule     `json:"houseRules,omitempty"`
	Testimonials []Testimonial   `json:"testimonials,omitempty"`
	Itinerary    []ItineraryDay  `json:"itinerary,omitempty"`
	SEO          *SEO            `json:"seo,omitempty"`
}
