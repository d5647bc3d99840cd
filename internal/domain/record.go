package domain

import "time"

// Kind selects which listing collection a record belongs to.
type Kind string

const (
	KindEvent    Kind = "event"
	KindProperty Kind = "property"
)

func (k Kind) Valid() bool { return k == KindEvent || k == KindProperty }

// Plural returns the URL path segment for the kind ("events", "properties").
func (k Kind) Plural() string {
	if k == KindProperty {
		return "properties"
	}
	return string(k) + "s"
}

var eventCategories = map[string]struct{}{
	"yacht-charter": {}, "wine-tasting": {}, "olive-oil-tasting": {},
	"cultural-tour": {}, "adventure": {}, "culinary": {}, "wellness": {}, "other": {},
}

var propertyCategories = map[string]struct{}{
	"apartment": {}, "house": {}, "villa": {}, "condo": {},
	"studio": {}, "penthouse": {}, "townhouse": {}, "other": {},
}

var eventStatuses = map[string]struct{}{
	"draft": {}, "published": {}, "cancelled": {}, "completed": {},
}

var propertyStatuses = map[string]struct{}{
	"draft": {}, "published": {}, "archived": {}, "maintenance": {},
}

func ValidCategory(k Kind, c string) bool {
	if k == KindProperty {
		_, ok := propertyCategories[c]
		return ok
	}
	_, ok := eventCategories[c]
	return ok
}

func ValidStatus(k Kind, s string) bool {
	if k == KindProperty {
		_, ok := propertyStatuses[s]
		return ok
	}
	_, ok := eventStatuses[s]
	return ok
}

type Coords struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Record is a canonical listing entity. The canonical store is the source of
// truth for existence: ids are assigned on create and never change, and slug is
// unique per kind. Event records carry StartDate/EndDate; property records carry
// the bedroom/bathroom/area trio. Capacity is guests for properties and max
// participants for events.
type Record struct {
	ID          string  `json:"id"`
	Kind        Kind    `json:"kind"`
	Slug        string  `json:"slug"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Coords      *Coords `json:"coordinates,omitempty"`
	Category    string  `json:"category"`
	Status      string  `json:"status"`
	IsPublic    bool    `json:"isPublic"`

	Price    float64 `json:"price"`
	Capacity int     `json:"capacity"`

	Bedrooms  int `json:"bedrooms,omitempty"`
	Bathrooms int `json:"bathrooms,omitempty"`
	Area      int `json:"area,omitempty"`

	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`

	CheckInTime  *string  `json:"checkInTime,omitempty"`
	CheckOutTime *string  `json:"checkOutTime,omitempty"`
	MinimumStay  *int     `json:"minimumStay,omitempty"`
	MaximumStay  *int     `json:"maximumStay,omitempty"`
	ContactEmail *string  `json:"contactEmail,omitempty"`
	ContactPhone *string  `json:"contactPhone,omitempty"`
	Requirements *string  `json:"requirements,omitempty"`
	Amenities    []string `json:"amenities,omitempty"`
	HouseRules   []string `json:"houseRules,omitempty"`

	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}
