package app

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"adriatic_listings/internal/domain"
)

// Page is an optional window over the filtered set, applied after filtering
// with order preserved. Zero values mean "everything".
type Page struct {
	Limit  int
	Offset int
}

// QueryService serves the read paths: filtered listing searches and cached
// detail lookups. Canonical-store failures always surface; content-store
// failures degrade to canonical-only views.
type QueryService struct {
	canonical domain.CanonicalStore
	content   domain.ContentStore
	joiner    *Joiner
	cache     domain.Cache
	cacheTTL  time.Duration
}

func NewQueryService(c domain.CanonicalStore, cs domain.ContentStore, cache domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{
		canonical: c,
		content:   cs,
		joiner:    NewJoiner(cs),
		cache:     cache,
		cacheTTL:  ttl,
	}
}

// Search runs one reconciliation pass: visibility-scoped canonical fetch,
// in-process filtering, a content join scoped to exactly the surviving ids,
// then a per-record merge. The content fetch depends on the canonical result
// (it needs the id set), so the two reads are sequenced, not parallel.
func (s *QueryService) Search(ctx context.Context, kind domain.Kind, criteria domain.FilterCriteria, locale string, page Page) ([]domain.MergedView, error) {
	records, err := s.canonical.ListVisible(ctx, kind)
	if err != nil {
		return nil, err
	}
	records = Apply(records, criteria)
	records = window(records, page)

	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	content := s.joiner.ContentFor(ctx, kind, ids, locale)

	views := make([]domain.MergedView, 0, len(records))
	for _, r := range records {
		var c *domain.ContentRecord
		if doc, ok := content[r.ID]; ok {
			c = &doc
		}
		views = append(views, Merge(r, c, locale))
	}
	return views, nil
}

// GetDetail resolves slugOrID (slug first, id as fallback) and returns the
// merged detail view, cache-aside per (kind, slugOrID, locale).
func (s *QueryService) GetDetail(ctx context.Context, kind domain.Kind, slugOrID, locale string) (domain.MergedView, error) {
	key := viewKey(kind, slugOrID, locale)
	var v domain.MergedView
	if ok, _ := s.cache.Get(ctx, key, &v); ok {
		return v, nil
	}

	rec, err := s.canonical.GetBySlug(ctx, kind, slugOrID)
	if errors.Is(err, domain.ErrNotFound) {
		rec, err = s.canonical.GetByID(ctx, kind, slugOrID)
	}
	if err != nil {
		return domain.MergedView{}, err
	}

	var c *domain.ContentRecord
	doc, cerr := s.content.GetByForeignID(ctx, kind, rec.ID, locale)
	switch {
	case cerr == nil:
		c = &doc
	case errors.Is(cerr, domain.ErrNotFound):
		// no document authored for this locale yet; merge falls back per field
	default:
		log.Warn().Err(cerr).
			Str("kind", string(kind)).
			Str("id", rec.ID).
			Str("locale", locale).
			Msg("content fetch degraded to canonical-only")
	}

	v = Merge(rec, c, locale)
	_ = s.cache.Set(ctx, key, v, int(s.cacheTTL.Seconds()))
	return v, nil
}

func window(records []domain.Record, p Page) []domain.Record {
	if p.Offset > 0 {
		if p.Offset >= len(records) {
			return nil
		}
		records = records[p.Offset:]
	}
	if p.Limit > 0 && p.Limit < len(records) {
		records = records[:p.Limit]
	}
	return records
}
