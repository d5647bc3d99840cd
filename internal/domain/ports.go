package domain

import "context"

// CanonicalStore is the transactional source of truth for listing records.
// Read failures from it always surface to the caller; there is no fallback
// source of existence.
type CanonicalStore interface {
	ListVisible(ctx context.Context, kind Kind) ([]Record, error)
	ListAll(ctx context.Context, kind Kind) ([]Record, error)
	GetByID(ctx context.Context, kind Kind, id string) (Record, error)
	GetBySlug(ctx context.Context, kind Kind, slug string) (Record, error)
	// Create assigns and returns a fresh opaque id; the record's slug must
	// already be derived and checked by the caller.
	Create(ctx context.Context, r Record) (string, error)
	Update(ctx context.Context, r Record) error
	Delete(ctx context.Context, kind Kind, id string) error
	// ExistsWithSlug reports a slug collision within kind, optionally
	// excluding one record id (so an update may keep its own slug).
	ExistsWithSlug(ctx context.Context, kind Kind, slug, excludeID string) (bool, error)
}

// ContentStore is the locale-partitioned marketing-content collaborator.
type ContentStore interface {
	// GetByForeignID returns ErrNotFound when no document exists for the
	// (kind, foreignId, locale) triple.
	GetByForeignID(ctx context.Context, kind Kind, foreignID, locale string) (ContentRecord, error)
	// GetByForeignIDs returns only the documents that exist; missing ids are
	// simply absent from the result.
	GetByForeignIDs(ctx context.Context, kind Kind, foreignIDs []string, locale string) ([]ContentRecord, error)
	// CreateMinimal seeds a skeleton document (id/title/location) so editors
	// can fill in copy later.
	CreateMinimal(ctx context.Context, kind Kind, foreignID, title, location string) (string, error)
	// DeleteByForeignID removes the documents for all locales of foreignID.
	// Nothing to delete is success, not an error.
	DeleteByForeignID(ctx context.Context, kind Kind, foreignID string) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// TokenVerifier guards admin write paths. Verification internals (sessions,
// JWTs, claims) live outside this module.
type TokenVerifier interface {
	// Verify returns ErrNotAuthorized for a missing or invalid token.
	Verify(ctx context.Context, token string) error
}
