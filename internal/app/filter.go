package app

import (
	"math"
	"strings"
	"time"

	"adriatic_listings/internal/domain"
)

// Apply narrows records to those satisfying every supplied constraint in c.
// It is a stable filter: passing records keep their relative input order, and
// nothing is re-sorted. Filtering happens here rather than in store queries so
// the canonical store only needs a cheap visibility-scoped fetch, no composite
// indexes.
//
// Malformed criteria (min > max) are applied literally and simply match
// nothing; they never produce an error.
func Apply(records []domain.Record, c domain.FilterCriteria) []domain.Record {
	out := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if matches(r, c) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r domain.Record, c domain.FilterCriteria) bool {
	if !matchEnum(r.Category, c.Category) {
		return false
	}
	if !matchEnum(r.Status, c.Status) {
		return false
	}
	if c.Location != "" && !containsFold(r.Location, c.Location) {
		return false
	}
	if c.Search != "" {
		if !containsFold(r.Title, c.Search) &&
			!containsFold(r.Description, c.Search) &&
			!containsFold(r.Location, c.Search) {
			return false
		}
	}

	if !inRangeF(r.Price, c.MinPrice, c.MaxPrice) {
		return false
	}
	if !inRangeI(r.Capacity, c.MinCapacity, c.MaxCapacity) {
		return false
	}
	if !inRangeI(r.Bedrooms, c.MinBedrooms, c.MaxBedrooms) {
		return false
	}
	if !inRangeI(r.Bathrooms, c.MinBathrooms, c.MaxBathrooms) {
		return false
	}
	if !inRangeI(r.Area, c.MinArea, c.MaxArea) {
		return false
	}

	if c.StartDate != nil && (r.StartDate == nil || r.StartDate.Before(*c.StartDate)) {
		return false
	}
	if c.EndDate != nil && (r.EndDate == nil || r.EndDate.After(*c.EndDate)) {
		return false
	}

	if c.MinDuration != nil || c.MaxDuration != nil {
		d, ok := recordDuration(r)
		if !ok || !inRangeI(d, c.MinDuration, c.MaxDuration) {
			return false
		}
	}

	return true
}

// matchEnum: exact equality; "" and the "all" sentinel both mean unconstrained.
func matchEnum(value, want string) bool {
	if want == "" || want == "all" {
		return true
	}
	return value == want
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func inRangeF(v float64, min, max *float64) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}

func inRangeI(v int, min, max *int) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}

// DurationDays is the derived event duration: ceil((end-start)/1 day).
func DurationDays(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

func recordDuration(r domain.Record) (int, bool) {
	if r.StartDate == nil || r.EndDate == nil {
		return 0, false
	}
	return DurationDays(*r.StartDate, *r.EndDate), true
}
