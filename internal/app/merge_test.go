package app_test

import (
	"strings"
	"testing"

	"adriatic_listings/internal/app"
	"adriatic_listings/internal/domain"
)

func TestMerge_NoContentFallsBackEverywhere(t *testing.T) {
	r := validEvent()
	r.ID, r.Slug = "e1", "sunset-sail"

	v := app.Merge(r, nil, "hr")
	if v.HasContent {
		t.Fatalf("expected hasContent=false")
	}
	if v.Title != r.Title {
		t.Fatalf("title: got %q", v.Title)
	}
	if v.Tagline != r.Location {
		t.Fatalf("tagline should fall back to location, got %q", v.Tagline)
	}
	if v.ShortDescription != r.Description+"..." {
		t.Fatalf("short description: got %q", v.ShortDescription)
	}
	if v.ImageURL != domain.PlaceholderImage {
		t.Fatalf("image: got %q", v.ImageURL)
	}
	if v.DetailURL != "/hr/events/sunset-sail" {
		t.Fatalf("detail url: got %q", v.DetailURL)
	}
}

func TestMerge_FallbacksApplyPerField(t *testing.T) {
	r := validProperty()
	r.ID, r.Slug = "p1", "stone-house-hvar"

	// half-authored: translated title exists, catchphrase and images do not
	c := &domain.ContentRecord{
		ForeignID:        "p1",
		Locale:           "no",
		TitleTranslation: "Steinhus Hvar",
	}
	v := app.Merge(r, c, "no")
	if !v.HasContent {
		t.Fatalf("expected hasContent=true")
	}
	if v.Title != "Steinhus Hvar" {
		t.Fatalf("title should use the translation, got %q", v.Title)
	}
	if v.Tagline != r.Location {
		t.Fatalf("missing catchphrase must fall back to location, got %q", v.Tagline)
	}
	if v.ImageURL != domain.PlaceholderImage {
		t.Fatalf("missing images must fall back to placeholder, got %q", v.ImageURL)
	}
	if v.DetailURL != "/no/properties/stone-house-hvar" {
		t.Fatalf("detail url: got %q", v.DetailURL)
	}
}

func TestMerge_ContentFieldsWin(t *testing.T) {
	r := validProperty()
	r.ID = "p1"
	c := &domain.ContentRecord{
		ForeignID:        "p1",
		Catchphrase:      "Sleep inside four centuries",
		ShortDescription: "Hand-cut stone, modern comfort.",
		Images:           []domain.Image{{URL: "https://cdn.example/p1.jpg"}},
		Featured:         true,
	}
	v := app.Merge(r, c, "en")
	if v.Tagline != c.Catchphrase || v.ShortDescription != c.ShortDescription {
		t.Fatalf("content copy should win: %+v", v)
	}
	if v.ImageURL != "https://cdn.example/p1.jpg" {
		t.Fatalf("image: got %q", v.ImageURL)
	}
	if !v.Featured {
		t.Fatalf("featured flag lost")
	}
}

func TestMerge_TeaserTruncatesLongDescriptions(t *testing.T) {
	r := validProperty()
	r.Description = strings.Repeat("š", 150)

	v := app.Merge(r, nil, "en")
	if v.ShortDescription != strings.Repeat("š", 100)+"..." {
		t.Fatalf("teaser should cut at 100 runes, got %d chars", len([]rune(v.ShortDescription)))
	}
}
