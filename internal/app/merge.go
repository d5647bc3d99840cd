package app

import (
	"fmt"

	"adriatic_listings/internal/domain"
)

// shortDescriptionLimit matches the listing-card teaser length.
const shortDescriptionLimit = 100

// Merge combines one canonical record with its (possibly absent) content
// document into a display-ready view. Fallbacks apply per field, not per
// record: operators fill in canonical data immediately and write marketing
// copy later, so a half-authored document must still contribute the fields it
// has.
//
//	title            content titleTranslation, else canonical title
//	tagline          content catchphrase, else the canonical location
//	shortDescription content shortDescription, else truncated description
//	imageUrl         first content image, else the placeholder marker
//	sub-lists        only when the content document supplies them
func Merge(r domain.Record, c *domain.ContentRecord, locale string) domain.MergedView {
	v := domain.MergedView{
		ID:     r.ID,
		Kind:   r.Kind,
		Slug:   r.Slug,
		Locale: locale,

		Title:            r.Title,
		Tagline:          r.Location,
		ShortDescription: teaser(r.Description),
		ImageURL:         domain.PlaceholderImage,
		DetailURL:        fmt.Sprintf("/%s/%s/%s", locale, r.Kind.Plural(), r.Slug),

		Location:  r.Location,
		Category:  r.Category,
		Status:    r.Status,
		Price:     r.Price,
		Capacity:  r.Capacity,
		Bedrooms:  r.Bedrooms,
		Bathrooms: r.Bathrooms,
		Area:      r.Area,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Amenities: r.Amenities,
	}
	if c == nil {
		return v
	}

	v.HasContent = true
	v.Featured = c.Featured
	if c.TitleTranslation != "" {
		v.Title = c.TitleTranslation
	}
	if c.Catchphrase != "" {
		v.Tagline = c.Catchphrase
	}
	if c.ShortDescription != "" {
		v.ShortDescription = c.ShortDescription
	}
	if len(c.Images) > 0 && c.Images[0].URL != "" {
		v.ImageURL = c.Images[0].URL
	}

	v.Description = c.Description
	v.Images = c.Images
	v.Highlights = c.Highlights
	v.Included = c.Included
	v.NotIncluded = c.NotIncluded
	v.Rules = c.Rules
	v.Testimonials = c.Testimonials
	v.Itinerary = c.Itinerary
	v.SEO = c.SEO

	return v
}

// teaser truncates a canonical description to the card length, always marking
// the cut with an ellipsis.
func teaser(description string) string {
	runes := []rune(description)
	if len(runes) > shortDescriptionLimit {
		runes = runes[:shortDescriptionLimit]
	}
	return string(runes) + "..."
}
