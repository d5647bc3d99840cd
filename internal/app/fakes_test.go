package app_test

import (
	"context"
	"time"

	"adriatic_listings/internal/domain"
)

// ---- fakes shared by the app tests ----

type fakeCanonical struct {
	visible []domain.Record
	recs    map[string]domain.Record // by id
	slugs   map[string]string        // slug -> owning id
	nextID  string

	listErr   error
	deleteErr error

	created []domain.Record
	updated []domain.Record
	deleted []string
}

func (f *fakeCanonical) ListVisible(ctx context.Context, kind domain.Kind) ([]domain.Record, error) {
	return f.visible, f.listErr
}

func (f *fakeCanonical) ListAll(ctx context.Context, kind domain.Kind) ([]domain.Record, error) {
	return f.visible, f.listErr
}

func (f *fakeCanonical) GetByID(ctx context.Context, kind domain.Kind, id string) (domain.Record, error) {
	if r, ok := f.recs[id]; ok {
		return r, nil
	}
	return domain.Record{}, domain.ErrNotFound
}

func (f *fakeCanonical) GetBySlug(ctx context.Context, kind domain.Kind, slug string) (domain.Record, error) {
	if id, ok := f.slugs[slug]; ok {
		return f.recs[id], nil
	}
	return domain.Record{}, domain.ErrNotFound
}

func (f *fakeCanonical) Create(ctx context.Context, rec domain.Record) (string, error) {
	f.created = append(f.created, rec)
	if f.nextID == "" {
		return "new-1", nil
	}
	return f.nextID, nil
}

func (f *fakeCanonical) Update(ctx context.Context, rec domain.Record) error {
	f.updated = append(f.updated, rec)
	return nil
}

func (f *fakeCanonical) Delete(ctx context.Context, kind domain.Kind, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeCanonical) ExistsWithSlug(ctx context.Context, kind domain.Kind, slug, excludeID string) (bool, error) {
	id, ok := f.slugs[slug]
	return ok && id != excludeID, nil
}

type fakeContent struct {
	docs map[string]domain.ContentRecord // by foreignID

	batchCalls int
	lastIDs    []string
	batchErr   error
	getErr     error
	createErr  error
	deleteErr  error

	createdFor []string
	deletedFor []string
}

func (f *fakeContent) GetByForeignID(ctx context.Context, kind domain.Kind, foreignID, locale string) (domain.ContentRecord, error) {
	if f.getErr != nil {
		return domain.ContentRecord{}, f.getErr
	}
	if d, ok := f.docs[foreignID]; ok {
		return d, nil
	}
	return domain.ContentRecord{}, domain.ErrNotFound
}

func (f *fakeContent) GetByForeignIDs(ctx context.Context, kind domain.Kind, foreignIDs []string, locale string) ([]domain.ContentRecord, error) {
	f.batchCalls++
	f.lastIDs = foreignIDs
	if f.batchErr != nil {
		return nil, f.batchErr
	}
	var out []domain.ContentRecord
	for _, id := range foreignIDs {
		if d, ok := f.docs[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeContent) CreateMinimal(ctx context.Context, kind domain.Kind, foreignID, title, location string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.createdFor = append(f.createdFor, foreignID)
	return "doc-" + foreignID, nil
}

func (f *fakeContent) DeleteByForeignID(ctx context.Context, kind domain.Kind, foreignID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedFor = append(f.deletedFor, foreignID)
	return nil
}

type fakeCache struct {
	store map[string]domain.MergedView
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	if d, ok := dst.(*domain.MergedView); ok {
		*d = v
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]domain.MergedView{}
	}
	if mv, ok := v.(domain.MergedView); ok {
		c.store[key] = mv
	}
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.dels = append(c.dels, key)
	delete(c.store, key)
	return nil
}

// ---- helpers ----

func ptr[T any](v T) *T { return &v }

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func validEvent() domain.Record {
	return domain.Record{
		Kind:        domain.KindEvent,
		Title:       "Sunset Sail",
		Description: "An evening sail along the old town walls.",
		Location:    "Dubrovnik",
		Category:    "yacht-charter",
		Status:      "published",
		IsPublic:    true,
		Price:       120,
		Capacity:    8,
		StartDate:   date(2026, 6, 1),
		EndDate:     date(2026, 6, 1),
	}
}

func validProperty() domain.Record {
	return domain.Record{
		Kind:        domain.KindProperty,
		Title:       "Stone House Hvar",
		Description: "A renovated stone house near the harbour.",
		Location:    "Hvar",
		Category:    "house",
		Status:      "published",
		IsPublic:    true,
		Price:       250,
		Capacity:    6,
		Bedrooms:    3,
		Bathrooms:   2,
		Area:        140,
	}
}
