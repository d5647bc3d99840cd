package domain

import "time"

// FilterCriteria is an immutable per-request set of optional constraints over
// canonical record fields. A nil bound (or empty / "all" string) means no
// constraint on that side; all supplied constraints must hold together.
type FilterCriteria struct {
	Search   string
	Category string
	Status   string
	Location string

	MinPrice *float64
	MaxPrice *float64

	MinBedrooms  *int
	MaxBedrooms  *int
	MinBathrooms *int
	MaxBathrooms *int
	MinCapacity  *int
	MaxCapacity  *int
	MinArea      *int
	MaxArea      *int

	StartDate *time.Time
	EndDate   *time.Time

	// Duration bounds in days; the record duration is ceil((end-start)/24h).
	MinDuration *int
	MaxDuration *int
}
