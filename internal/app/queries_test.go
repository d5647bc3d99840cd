package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"adriatic_listings/internal/app"
	"adriatic_listings/internal/domain"
)

func TestSearch_JoinsContentPerRecord(t *testing.T) {
	r1 := validEvent()
	r1.ID, r1.Slug = "e1", "sunset-sail"
	r2 := validEvent()
	r2.ID, r2.Slug, r2.Title = "e2", "wine-walk", "Wine Walk"

	repo := &fakeCanonical{visible: []domain.Record{r1, r2}}
	cs := &fakeContent{docs: map[string]domain.ContentRecord{
		"e1": {ForeignID: "e1", Locale: "no", Catchphrase: "Seil i solnedgangen"},
	}}
	q := app.NewQueryService(repo, cs, &fakeCache{}, time.Minute)

	views, err := q.Search(context.Background(), domain.KindEvent, domain.FilterCriteria{}, "no", app.Page{})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}
	if !views[0].HasContent || views[0].Tagline != "Seil i solnedgangen" {
		t.Fatalf("first view should carry its content: %+v", views[0])
	}
	if views[1].HasContent || views[1].Tagline != r2.Location {
		t.Fatalf("second view should be canonical-only: %+v", views[1])
	}
}

func TestSearch_ContentFailureStillReturnsViews(t *testing.T) {
	r := validEvent()
	r.ID = "e1"
	repo := &fakeCanonical{visible: []domain.Record{r}}
	cs := &fakeContent{batchErr: errors.New("cms down")}
	q := app.NewQueryService(repo, cs, &fakeCache{}, time.Minute)

	views, err := q.Search(context.Background(), domain.KindEvent, domain.FilterCriteria{}, "en", app.Page{})
	if err != nil {
		t.Fatalf("content failure must not fail the search: %v", err)
	}
	if len(views) != 1 || views[0].HasContent {
		t.Fatalf("expected one canonical-only view, got %+v", views)
	}
}

func TestSearch_CanonicalFailureSurfaces(t *testing.T) {
	repo := &fakeCanonical{listErr: errors.New("db down")}
	q := app.NewQueryService(repo, &fakeContent{}, &fakeCache{}, time.Minute)

	if _, err := q.Search(context.Background(), domain.KindEvent, domain.FilterCriteria{}, "en", app.Page{}); err == nil {
		t.Fatalf("expected canonical store error to surface")
	}
}

func TestSearch_Pagination(t *testing.T) {
	var recs []domain.Record
	for _, id := range []string{"a", "b", "c", "d"} {
		r := validEvent()
		r.ID = id
		recs = append(recs, r)
	}
	repo := &fakeCanonical{visible: recs}
	q := app.NewQueryService(repo, &fakeContent{}, &fakeCache{}, time.Minute)

	views, err := q.Search(context.Background(), domain.KindEvent, domain.FilterCriteria{}, "en", app.Page{Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(views) != 2 || views[0].ID != "b" || views[1].ID != "c" {
		t.Fatalf("unexpected window: %+v", views)
	}

	// offset past the end is an empty page, not an error
	views, err = q.Search(context.Background(), domain.KindEvent, domain.FilterCriteria{}, "en", app.Page{Offset: 10})
	if err != nil || len(views) != 0 {
		t.Fatalf("expected empty page, got %v / %v", views, err)
	}
}

func TestGetDetail_CacheMissThenHit(t *testing.T) {
	r := validProperty()
	r.ID, r.Slug = "p1", "stone-house-hvar"
	repo := &fakeCanonical{
		recs:  map[string]domain.Record{"p1": r},
		slugs: map[string]string{"stone-house-hvar": "p1"},
	}
	cache := &fakeCache{}
	q := app.NewQueryService(repo, &fakeContent{}, cache, time.Minute)

	// Miss (first time, populates cache)
	v, err := q.GetDetail(context.Background(), domain.KindProperty, "stone-house-hvar", "en")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if v.Title != r.Title {
		t.Fatalf("unexpected view: %+v", v)
	}

	// Mutate repo to ensure second read indeed comes from cache
	r.Title = "SHOULD NOT SEE THIS"
	repo.recs["p1"] = r

	v2, err := q.GetDetail(context.Background(), domain.KindProperty, "stone-house-hvar", "en")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if v2.Title != "Stone House Hvar" {
		t.Fatalf("expected cached title, got %q", v2.Title)
	}
}

func TestGetDetail_FallsBackFromSlugToID(t *testing.T) {
	r := validProperty()
	r.ID, r.Slug = "p1", "stone-house-hvar"
	repo := &fakeCanonical{
		recs:  map[string]domain.Record{"p1": r},
		slugs: map[string]string{"stone-house-hvar": "p1"},
	}
	q := app.NewQueryService(repo, &fakeContent{}, &fakeCache{}, time.Minute)

	v, err := q.GetDetail(context.Background(), domain.KindProperty, "p1", "en")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if v.Slug != "stone-house-hvar" {
		t.Fatalf("expected id lookup to find the record, got %+v", v)
	}
}

func TestGetDetail_NotFound(t *testing.T) {
	repo := &fakeCanonical{}
	q := app.NewQueryService(repo, &fakeContent{}, &fakeCache{}, time.Minute)

	_, err := q.GetDetail(context.Background(), domain.KindProperty, "nope", "en")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetDetail_ContentFailureDegrades(t *testing.T) {
	r := validProperty()
	r.ID, r.Slug = "p1", "stone-house-hvar"
	repo := &fakeCanonical{
		recs:  map[string]domain.Record{"p1": r},
		slugs: map[string]string{"stone-house-hvar": "p1"},
	}
	cs := &fakeContent{getErr: errors.New("cms down")}
	q := app.NewQueryService(repo, cs, &fakeCache{}, time.Minute)

	v, err := q.GetDetail(context.Background(), domain.KindProperty, "stone-house-hvar", "en")
	if err != nil {
		t.Fatalf("content failure must not fail the detail read: %v", err)
	}
	if v.HasContent {
		t.Fatalf("expected canonical-only view, got %+v", v)
	}
}
