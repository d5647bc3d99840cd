package domain

import "encoding/json"

type Image struct {
	URL     string `json:"url"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
}

type Highlight struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

type HouseRule struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Mandatory   bool   `json:"mandatory"`
}

type Testimonial struct {
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
	Text   string  `json:"text"`
	Date   string  `json:"date,omitempty"`
}

type ItineraryDay struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type SEO struct {
	MetaTitle       string   `json:"metaTitle,omitempty"`
	MetaDescription string   `json:"metaDescription,omitempty"`
	Keywords        []string `json:"keywords,omitempty"`
}

// ContentRecord holds the locale-specific marketing copy for one canonical
// record. At most one exists per (kind, foreignId, locale). Title and Location
// are read-only copies of the canonical fields written at creation time; every
// other field is authored in the content store and may be missing at any stage
// of the editorial workflow.
//
// A ContentRecord whose foreignId no longer matches a canonical record is an
// orphan: it is never merged or displayed, since reads always start from the
// canonical side.
type ContentRecord struct {
	ID        string `json:"id"`
	Kind      Kind   `json:"kind"`
	ForeignID string `json:"foreignId"`
	Locale    string `json:"locale"`

	Title            string `json:"title"`
	Location         string `json:"location"`
	TitleTranslation string `json:"titleTranslation,omitempty"`
	Catchphrase      string `json:"catchphrase,omitempty"`
	ShortDescription string `json:"shortDescription,omitempty"`
	Featured         bool   `json:"featured,omitempty"`

	// Rich text blocks passed through untouched.
	Description json.RawMessage `json:"description,omitempty"`

	Images       []Image        `json:"images,omitempty"`
	Highlights   []Highlight    `json:"highlights,omitempty"`
	Included     []string       `json:"included,omitempty"`
	NotIncluded  []string       `json:"notIncluded,omitempty"`
	Rules        []HouseRule    `json:"houseRules,omitempty"`
	Testimonials []Testimonial  `json:"testimonials,omitempty"`
	Itinerary    []ItineraryDay `json:"itinerary,omitempty"`
	SEO          *SEO           `json:"seo,omitempty"`
}
