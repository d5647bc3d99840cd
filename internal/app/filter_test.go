package app_test

import (
	"testing"
	"time"

	"adriatic_listings/internal/app"
	"adriatic_listings/internal/domain"
)

func rec(id, title, location, category string, price float64) domain.Record {
	return domain.Record{
		ID: id, Kind: domain.KindProperty, Title: title, Location: location,
		Category: category, Status: "published", Price: price, Capacity: 4,
	}
}

func TestApply_ConjunctiveAndStable(t *testing.T) {
	in := []domain.Record{
		rec("a", "Villa Mir", "Split", "villa", 300),
		rec("b", "Apartment Luka", "Split", "apartment", 90),
		rec("c", "Villa Roza", "Zadar", "villa", 150),
		rec("d", "Villa Ankora", "Split", "villa", 120),
	}
	maxPrice := 200.0
	out := app.Apply(in, domain.FilterCriteria{Category: "villa", MaxPrice: &maxPrice})
	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d: %+v", len(out), out)
	}
	// both constraints hold and input order is preserved
	if out[0].ID != "c" || out[1].ID != "d" {
		t.Fatalf("unexpected order: %s, %s", out[0].ID, out[1].ID)
	}
}

func TestApply_AllSentinelIsUnconstrained(t *testing.T) {
	in := []domain.Record{
		rec("a", "Villa Mir", "Split", "villa", 300),
		rec("b", "Apartment Luka", "Split", "apartment", 90),
	}
	out := app.Apply(in, domain.FilterCriteria{Category: "all", Status: "all"})
	if len(out) != len(in) {
		t.Fatalf("expected all %d records, got %d", len(in), len(out))
	}
}

func TestApply_SearchFoldsCase(t *testing.T) {
	in := []domain.Record{
		rec("a", "Villa Mir", "Split", "villa", 300),
		rec("b", "Apartment Luka", "Zadar", "apartment", 90),
	}
	out := app.Apply(in, domain.FilterCriteria{Search: "SPLIT"})
	if len(out) != 1 || out[0].ID != "a" {
		t.Fatalf("expected only the Split record, got %+v", out)
	}
}

func TestApply_MinAboveMaxMatchesNothing(t *testing.T) {
	in := []domain.Record{rec("a", "Villa Mir", "Split", "villa", 300)}
	min, max := 500.0, 100.0
	out := app.Apply(in, domain.FilterCriteria{MinPrice: &min, MaxPrice: &max})
	if len(out) != 0 {
		t.Fatalf("expected empty result for min > max, got %d", len(out))
	}
}

func TestApply_DateBoundFailsWithoutRecordDate(t *testing.T) {
	withDates := rec("a", "Regatta", "Split", "villa", 100)
	withDates.StartDate = date(2026, 7, 10)
	withDates.EndDate = date(2026, 7, 12)
	undated := rec("b", "Open House", "Split", "villa", 100)

	out := app.Apply([]domain.Record{withDates, undated}, domain.FilterCriteria{StartDate: date(2026, 7, 1)})
	if len(out) != 1 || out[0].ID != "a" {
		t.Fatalf("undated record must fail a supplied date bound, got %+v", out)
	}
}

func TestDurationDays_PartialDayRoundsUp(t *testing.T) {
	start := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2026, 7, 3, 12, 0, 0, 0, time.UTC) // 2 days 2 hours
	if got := app.DurationDays(start, end); got != 3 {
		t.Fatalf("expected 3 days, got %d", got)
	}
}

func TestApply_DurationBounds(t *testing.T) {
	short := rec("a", "Day Trip", "Split", "villa", 100)
	short.StartDate = date(2026, 7, 1)
	short.EndDate = date(2026, 7, 2) // 1 day
	long := rec("b", "Week Charter", "Split", "villa", 100)
	long.StartDate = date(2026, 7, 1)
	long.EndDate = date(2026, 7, 8) // 7 days
	openEnded := rec("c", "No End", "Split", "villa", 100)
	openEnded.StartDate = date(2026, 7, 1)

	min := 2
	out := app.Apply([]domain.Record{short, long, openEnded}, domain.FilterCriteria{MinDuration: &min})
	if len(out) != 1 || out[0].ID != "b" {
		t.Fatalf("expected only the week charter, got %+v", out)
	}
}
