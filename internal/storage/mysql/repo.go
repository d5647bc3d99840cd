package mysql

import (
	"context"
	crand "crypto/rand"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"

	driver "github.com/go-sql-driver/mysql"

	"adriatic_listings/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
func valInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// newID mints the opaque record identifier. Ids never change after creation
// and are never reused: a delete followed by a create always yields a new id.
func newID() (string, error) {
	var b [12]byte
	if _, err := crand.Read(b[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(b[:]), nil
}

func (r *Repo) Create(ctx context.Context, rec domain.Record) (string, error) {
	id, err := newID()
	if err != nil {
		return "", err
	}
	amen, _ := json.Marshal(rec.Amenities)
	rules, _ := json.Marshal(rec.HouseRules)

	var lat, lng any
	if rec.Coords != nil {
		lat, lng = rec.Coords.Lat, rec.Coords.Lng
	}

	_, err = r.db.ExecContext(ctx, insertListingSQL,
		id, string(rec.Kind), rec.Slug, rec.Title, rec.Description, rec.Location, lat, lng,
		rec.Category, rec.Status, rec.IsPublic, rec.Price, rec.Capacity,
		rec.Bedrooms, rec.Bathrooms, rec.Area, rec.StartDate, rec.EndDate,
		valStr(rec.CheckInTime), valStr(rec.CheckOutTime), valInt(rec.MinimumStay), valInt(rec.MaximumStay),
		valStr(rec.ContactEmail), valStr(rec.ContactPhone), valStr(rec.Requirements),
		string(amen), string(rules), rec.CreatedAt, rec.UpdatedAt,
	)
	if isDuplicateKey(err) {
		// backstop for the unique (kind, slug) index racing the app-level check
		return "", domain.ErrDuplicateSlug
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *Repo) Update(ctx context.Context, rec domain.Record) error {
	amen, _ := json.Marshal(rec.Amenities)
	rules, _ := json.Marshal(rec.HouseRules)

	var lat, lng any
	if rec.Coords != nil {
		lat, lng = rec.Coords.Lat, rec.Coords.Lng
	}

	res, err := r.db.ExecContext(ctx, updateListingSQL,
		rec.Slug, rec.Title, rec.Description, rec.Location, lat, lng,
		rec.Category, rec.Status, rec.IsPublic, rec.Price, rec.Capacity,
		rec.Bedrooms, rec.Bathrooms, rec.Area, rec.StartDate, rec.EndDate,
		valStr(rec.CheckInTime), valStr(rec.CheckOutTime), valInt(rec.MinimumStay), valInt(rec.MaximumStay),
		valStr(rec.ContactEmail), valStr(rec.ContactPhone), valStr(rec.Requirements),
		string(amen), string(rules), rec.UpdatedAt,
		string(rec.Kind), rec.ID,
	)
	if isDuplicateKey(err) {
		return domain.ErrDuplicateSlug
	}
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// either missing or an identical row; confirm existence
		if _, gerr := r.GetByID(ctx, rec.Kind, rec.ID); gerr != nil {
			return gerr
		}
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, kind domain.Kind, id string) error {
	res, err := r.db.ExecContext(ctx, deleteListingSQL, string(kind), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, kind domain.Kind, id string) (domain.Record, error) {
	return scanListing(r.db.QueryRowContext(ctx, getByIDSQL, string(kind), id))
}

func (r *Repo) GetBySlug(ctx context.Context, kind domain.Kind, slug string) (domain.Record, error) {
	return scanListing(r.db.QueryRowContext(ctx, getBySlugSQL, string(kind), slug))
}

func (r *Repo) ListVisible(ctx context.Context, kind domain.Kind) ([]domain.Record, error) {
	return r.list(ctx, listVisibleSQL, kind)
}

func (r *Repo) ListAll(ctx context.Context, kind domain.Kind) ([]domain.Record, error) {
	return r.list(ctx, listAllSQL, kind)
}

func (r *Repo) list(ctx context.Context, query string, kind domain.Kind) ([]domain.Record, error) {
	rows, err := r.db.QueryContext(ctx, query, string(kind))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Record
	for rows.Next() {
		rec, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) ExistsWithSlug(ctx context.Context, kind domain.Kind, slug, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, existsWithSlugSQL, string(kind), slug, excludeID).Scan(&exists)
	return exists, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (domain.Record, error) {
	var rec domain.Record
	var (
		kind                       string
		lat, lng                   sql.NullFloat64
		startDate, endDate         sql.NullTime
		checkIn, checkOut          sql.NullString
		minStay, maxStay           sql.NullInt64
		email, phone, requirements sql.NullString
		amenities, houseRules      []byte
	)
	if err := row.Scan(
		&rec.ID, &kind, &rec.Slug, &rec.Title, &rec.Description, &rec.Location, &lat, &lng,
		&rec.Category, &rec.Status, &rec.IsPublic, &rec.Price, &rec.Capacity,
		&rec.Bedrooms, &rec.Bathrooms, &rec.Area, &startDate, &endDate,
		&checkIn, &checkOut, &minStay, &maxStay,
		&email, &phone, &requirements,
		&amenities, &houseRules, &rec.CreatedAt, &rec.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Record{}, domain.ErrNotFound
		}
		return domain.Record{}, err
	}

	rec.Kind = domain.Kind(kind)
	if lat.Valid && lng.Valid {
		rec.Coords = &domain.Coords{Lat: lat.Float64, Lng: lng.Float64}
	}
	if startDate.Valid {
		t := startDate.Time
		rec.StartDate = &t
	}
	if endDate.Valid {
		t := endDate.Time
		rec.EndDate = &t
	}
	if checkIn.Valid {
		s := checkIn.String
		rec.CheckInTime = &s
	}
	if checkOut.Valid {
		s := checkOut.String
		rec.CheckOutTime = &s
	}
	if minStay.Valid {
		n := int(minStay.Int64)
		rec.MinimumStay = &n
	}
	if maxStay.Valid {
		n := int(maxStay.Int64)
		rec.MaximumStay = &n
	}
	if email.Valid {
		s := email.String
		rec.ContactEmail = &s
	}
	if phone.Valid {
		s := phone.String
		rec.ContactPhone = &s
	}
	if requirements.Valid {
		s := requirements.String
		rec.Requirements = &s
	}
	_ = json.Unmarshal(amenities, &rec.Amenities)
	_ = json.Unmarshal(houseRules, &rec.HouseRules)
	return rec, nil
}

func isDuplicateKey(err error) bool {
	var me *driver.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
