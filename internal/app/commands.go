package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"adriatic_listings/internal/domain"
)

// LifecycleService owns the write paths: slug derivation and uniqueness,
// creation of the paired content skeleton, and the cross-store delete order.
// The two stores share no transaction mechanism, so consistency between them
// is explicit best-effort, never atomic.
type LifecycleService struct {
	canonical domain.CanonicalStore
	content   domain.ContentStore
	cache     domain.Cache
}

func NewLifecycleService(c domain.CanonicalStore, cs domain.ContentStore, cache domain.Cache) *LifecycleService {
	return &LifecycleService{canonical: c, content: cs, cache: cache}
}

// CreateResult reports a create. ContentID is empty when the content-store
// skeleton write failed: that failure is deliberately non-fatal on create, so
// the canonical record stands and editors can author the document later.
type CreateResult struct {
	ID        string `json:"id"`
	ContentID string `json:"contentId,omitempty"`
}

func (s *LifecycleService) Create(ctx context.Context, rec domain.Record) (CreateResult, error) {
	if err := validateRecord(rec); err != nil {
		return CreateResult{}, err
	}

	slug := rec.Slug
	if slug == "" {
		slug = DeriveSlug(rec.Title)
	}
	if !IsValidSlug(slug) {
		return CreateResult{}, &domain.ValidationError{Field: "slug", Reason: "cannot derive a valid slug"}
	}
	taken, err := s.canonical.ExistsWithSlug(ctx, rec.Kind, slug, "")
	if err != nil {
		return CreateResult{}, err
	}
	if taken {
		return CreateResult{}, domain.ErrDuplicateSlug
	}

	rec.Slug = slug
	now := time.Now().UTC()
	rec.CreatedAt, rec.UpdatedAt = now, now

	// Canonical write first: it is the source of truth for existence.
	id, err := s.canonical.Create(ctx, rec)
	if err != nil {
		return CreateResult{}, err
	}

	contentID, cerr := s.content.CreateMinimal(ctx, rec.Kind, id, rec.Title, rec.Location)
	if cerr != nil {
		log.Warn().Err(cerr).
			Str("kind", string(rec.Kind)).
			Str("id", id).
			Msg("content skeleton create failed; canonical record kept")
		contentID = ""
	}
	return CreateResult{ID: id, ContentID: contentID}, nil
}

func (s *LifecycleService) Update(ctx context.Context, kind domain.Kind, id string, rec domain.Record) error {
	cur, err := s.canonical.GetByID(ctx, kind, id)
	if err != nil {
		return err
	}

	rec.ID, rec.Kind = id, kind
	if err := validateRecord(rec); err != nil {
		return err
	}

	slug := rec.Slug
	if slug == "" {
		slug = DeriveSlug(rec.Title)
	}
	if !IsValidSlug(slug) {
		return &domain.ValidationError{Field: "slug", Reason: "cannot derive a valid slug"}
	}
	// A record may keep its own slug unchanged.
	taken, err := s.canonical.ExistsWithSlug(ctx, kind, slug, id)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrDuplicateSlug
	}

	rec.Slug = slug
	rec.CreatedAt = cur.CreatedAt
	rec.UpdatedAt = time.Now().UTC()
	if err := s.canonical.Update(ctx, rec); err != nil {
		return err
	}

	s.invalidateViews(ctx, kind, cur.Slug, cur.ID)
	if slug != cur.Slug {
		s.invalidateViews(ctx, kind, slug, "")
	}
	return nil
}

// Delete removes the content documents first and fails closed: if the content
// store cannot confirm the delete, the canonical record stays retrievable and
// the caller sees the partial failure. This order prevents silently minting
// canonical-less orphan content, accepting the lesser risk of temporarily
// orphaned content if the canonical delete itself fails afterwards.
func (s *LifecycleService) Delete(ctx context.Context, kind domain.Kind, id string) error {
	cur, err := s.canonical.GetByID(ctx, kind, id)
	if err != nil {
		return err
	}

	if err := s.content.DeleteByForeignID(ctx, kind, id); err != nil {
		return &domain.PartialFailure{Step: "content delete", Err: err}
	}
	if err := s.canonical.Delete(ctx, kind, id); err != nil {
		return &domain.PartialFailure{Step: "canonical delete", Err: err}
	}

	s.invalidateViews(ctx, kind, cur.Slug, cur.ID)
	return nil
}

// invalidateViews drops the cached detail views for every supported locale,
// under both the slug and id lookup keys.
func (s *LifecycleService) invalidateViews(ctx context.Context, kind domain.Kind, slug, id string) {
	if s.cache == nil {
		return
	}
	for _, l := range SupportedLocales {
		_ = s.cache.Del(ctx, viewKey(kind, slug, l))
		if id != "" {
			_ = s.cache.Del(ctx, viewKey(kind, id, l))
		}
	}
}

func viewKey(kind domain.Kind, slugOrID, locale string) string {
	return fmt.Sprintf("view:%s:%s:%s", kind, slugOrID, locale)
}

func validateRecord(r domain.Record) error {
	if !r.Kind.Valid() {
		return &domain.ValidationError{Field: "kind", Reason: "unknown kind"}
	}
	if r.Title == "" {
		return &domain.ValidationError{Field: "title", Reason: "title is required"}
	}
	if len(r.Description) < 10 {
		return &domain.ValidationError{Field: "description", Reason: "must contain at least 10 characters"}
	}
	if len(r.Location) < 3 {
		return &domain.ValidationError{Field: "location", Reason: "must contain at least 3 characters"}
	}
	if !domain.ValidCategory(r.Kind, r.Category) {
		return &domain.ValidationError{Field: "category", Reason: "unknown category"}
	}
	if !domain.ValidStatus(r.Kind, r.Status) {
		return &domain.ValidationError{Field: "status", Reason: "unknown status"}
	}
	if r.Price < 0 {
		return &domain.ValidationError{Field: "price", Reason: "cannot be negative"}
	}
	if r.Capacity < 1 {
		return &domain.ValidationError{Field: "capacity", Reason: "must be at least 1"}
	}

	switch r.Kind {
	case domain.KindEvent:
		if r.StartDate == nil || r.EndDate == nil {
			return &domain.ValidationError{Field: "startDate", Reason: "start and end dates are required"}
		}
		if r.EndDate.Before(*r.StartDate) {
			return &domain.ValidationError{Field: "endDate", Reason: "must not be before start date"}
		}
	case domain.KindProperty:
		if r.Bedrooms < 0 {
			return &domain.ValidationError{Field: "bedrooms", Reason: "cannot be negative"}
		}
		if r.Bathrooms < 0 {
			return &domain.ValidationError{Field: "bathrooms", Reason: "cannot be negative"}
		}
		if r.Area < 1 {
			return &domain.ValidationError{Field: "area", Reason: "must be at least 1 square meter"}
		}
		if r.MinimumStay != nil && *r.MinimumStay < 1 {
			return &domain.ValidationError{Field: "minimumStay", Reason: "must be at least 1 night"}
		}
		if r.MinimumStay != nil && r.MaximumStay != nil && *r.MinimumStay > *r.MaximumStay {
			return &domain.ValidationError{Field: "minimumStay", Reason: "must not exceed maximum stay"}
		}
	}
	return nil
}
