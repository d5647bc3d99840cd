package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"adriatic_listings/internal/adapters/observability"
	"adriatic_listings/internal/domain"
)

// Joiner fetches the content documents matching a set of canonical ids for one
// locale and shapes them into an id lookup.
type Joiner struct {
	content domain.ContentStore
}

func NewJoiner(c domain.ContentStore) *Joiner { return &Joiner{content: c} }

// ContentFor returns a map holding only the ids that have a content document
// for the locale; missing ids are simply absent. The fetch is always scoped to
// exactly ids, never a full content-store scan, and an empty id set returns
// an empty map without any external call.
//
// A content-store failure degrades to an empty map with a logged warning: a
// broken CMS must never prevent canonical data from being rendered.
func (j *Joiner) ContentFor(ctx context.Context, kind domain.Kind, ids []string, locale string) map[string]domain.ContentRecord {
	if len(ids) == 0 {
		return map[string]domain.ContentRecord{}
	}
	docs, err := j.content.GetByForeignIDs(ctx, kind, ids, locale)
	if err != nil {
		log.Warn().Err(err).
			Str("kind", string(kind)).
			Str("locale", locale).
			Int("ids", len(ids)).
			Msg("content join degraded to canonical-only")
		observability.ObserveJoinDegraded(string(kind))
		return map[string]domain.ContentRecord{}
	}
	out := make(map[string]domain.ContentRecord, len(docs))
	for _, d := range docs {
		out[d.ForeignID] = d
	}
	return out
}
