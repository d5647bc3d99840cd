package mysql

// All listing kinds share one table; (kind, slug) carries the uniqueness
// invariant. Amenities and house_rules are JSON text columns.

const listingColumns = `
  id, kind, slug, title, description, location, lat, lng,
  category, status, is_public, price, capacity,
  bedrooms, bathrooms, area, start_date, end_date,
  check_in_time, check_out_time, minimum_stay, maximum_stay,
  contact_email, contact_phone, requirements,
  amenities, house_rules, created_at, updated_at`

const insertListingSQL = `
INSERT INTO listings
  (id, kind, slug, title, description, location, lat, lng,
   category, status, is_public, price, capacity,
   bedrooms, bathrooms, area, start_date, end_date,
   check_in_time, check_out_time, minimum_stay, maximum_stay,
   contact_email, contact_phone, requirements,
   amenities, house_rules, created_at, updated_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const updateListingSQL = `
UPDATE listings SET
  slug = ?, title = ?, description = ?, location = ?, lat = ?, lng = ?,
  category = ?, status = ?, is_public = ?, price = ?, capacity = ?,
  bedrooms = ?, bathrooms = ?, area = ?, start_date = ?, end_date = ?,
  check_in_time = ?, check_out_time = ?, minimum_stay = ?, maximum_stay = ?,
  contact_email = ?, contact_phone = ?, requirements = ?,
  amenities = ?, house_rules = ?, updated_at = ?
WHERE kind = ? AND id = ?
`

const deleteListingSQL = `DELETE FROM listings WHERE kind = ? AND id = ?`

const getByIDSQL = `SELECT` + listingColumns + `
FROM listings WHERE kind = ? AND id = ?`

const getBySlugSQL = `SELECT` + listingColumns + `
FROM listings WHERE kind = ? AND slug = ?`

// Visibility-scoped fetch, newest first; filtering happens in the app layer.
const listVisibleSQL = `SELECT` + listingColumns + `
FROM listings WHERE kind = ? AND is_public = 1
ORDER BY created_at DESC, id DESC`

const listAllSQL = `SELECT` + listingColumns + `
FROM listings WHERE kind = ?
ORDER BY created_at DESC, id DESC`

const existsWithSlugSQL = `
SELECT EXISTS(SELECT 1 FROM listings WHERE kind = ? AND slug = ? AND id <> ?)`
