// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"adriatic_listings/internal/app"
	"adriatic_listings/internal/domain"
)

type Handlers struct {
	Q    *app.QueryService
	L    *app.LifecycleService
	Auth domain.TokenVerifier
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/v1/admin", func(r chi.Router) {
		r.Post("/events", h.create(domain.KindEvent))
		r.Put("/events/{id}", h.update(domain.KindEvent))
		r.Delete("/events/{id}", h.remove(domain.KindEvent))
		r.Post("/properties", h.create(domain.KindProperty))
		r.Put("/properties/{id}", h.update(domain.KindProperty))
		r.Delete("/properties/{id}", h.remove(domain.KindProperty))
	})

	s.mux.Route("/v1/{lang}", func(r chi.Router) {
		r.Get("/events", h.search(domain.KindEvent))
		r.Get("/events/{slug}", h.detail(domain.KindEvent))
		r.Get("/properties", h.search(domain.KindProperty))
		r.Get("/properties/{slug}", h.detail(domain.KindProperty))
	})
}

func requestLocale(r *http.Request) string {
	return app.ResolveLocale(chi.URLParam(r, "lang"), r.Header.Get("Accept-Language"))
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps the domain taxonomy to HTTP statuses. Write-path errors are
// surfaced verbatim enough for a form to render distinct messages.
func writeError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	var pf *domain.PartialFailure
	switch {
	case errors.As(err, &ve):
		writeProblem(w, http.StatusUnprocessableEntity, "Validation Error", ve.Error())
	case errors.Is(err, domain.ErrDuplicateSlug):
		writeProblem(w, http.StatusConflict, "Duplicate Slug", "a record with this title already exists; choose a different title or slug")
	case errors.Is(err, domain.ErrNotAuthorized):
		writeProblem(w, http.StatusUnauthorized, "Not Authorized", "")
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", "")
	case errors.As(err, &pf):
		writeProblem(w, http.StatusInternalServerError, "Partial Failure", pf.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		writeProblem(w, http.StatusServiceUnavailable, "Store Unavailable", "")
	default:
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeJSON(w http.ResponseWriter, r *http.Request, locale string, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	if locale != "" {
		w.Header().Set("Content-Language", locale)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// ---- read paths ----

func (h *Handlers) search(kind domain.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locale := requestLocale(r)
		criteria, page, err := criteriaFromQuery(r.URL.Query())
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid Filter", err.Error())
			return
		}
		views, err := h.Q.Search(r.Context(), kind, criteria, locale, page)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, r, locale, struct {
			Items []domain.MergedView `json:"items"`
			Count int                 `json:"count"`
		}{Items: views, Count: len(views)})
	}
}

func (h *Handlers) detail(kind domain.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locale := requestLocale(r)
		view, err := h.Q.GetDetail(r.Context(), kind, chi.URLParam(r, "slug"), locale)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, r, locale, view)
	}
}

// ---- write paths ----

func (h *Handlers) authorize(r *http.Request) error {
	token := ""
	if ah := r.Header.Get("Authorization"); strings.HasPrefix(ah, "Bearer ") {
		token = strings.TrimPrefix(ah, "Bearer ")
	}
	return h.Auth.Verify(r.Context(), token)
}

func (h *Handlers) create(kind domain.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.authorize(r); err != nil {
			writeError(w, err)
			return
		}
		var rec domain.Record
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid Body", err.Error())
			return
		}
		rec.Kind = kind
		res, err := h.L.Create(r.Context(), rec)
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(res)
	}
}

func (h *Handlers) update(kind domain.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.authorize(r); err != nil {
			writeError(w, err)
			return
		}
		var rec domain.Record
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid Body", err.Error())
			return
		}
		if err := h.L.Update(r.Context(), kind, chi.URLParam(r, "id"), rec); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handlers) remove(kind domain.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.authorize(r); err != nil {
			writeError(w, err)
			return
		}
		if err := h.L.Delete(r.Context(), kind, chi.URLParam(r, "id")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ---- query-param parsing ----

func criteriaFromQuery(q map[string][]string) (domain.FilterCriteria, app.Page, error) {
	get := func(k string) string {
		if vs, ok := q[k]; ok && len(vs) > 0 {
			return strings.TrimSpace(vs[0])
		}
		return ""
	}

	var perr error
	pfloat := func(k string) *float64 {
		s := get(k)
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			perr = errInvalidParam(k)
			return nil
		}
		return &f
	}
	pint := func(k string) *int {
		s := get(k)
		if s == "" {
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			perr = errInvalidParam(k)
			return nil
		}
		return &n
	}
	pdate := func(k string) *time.Time {
		s := get(k)
		if s == "" {
			return nil
		}
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			perr = errInvalidParam(k)
			return nil
		}
		return &t
	}

	c := domain.FilterCriteria{
		Search:   get("search"),
		Category: get("category"),
		Status:   get("status"),
		Location: get("location"),

		MinPrice: pfloat("minPrice"),
		MaxPrice: pfloat("maxPrice"),

		MinBedrooms:  pint("minBedrooms"),
		MaxBedrooms:  pint("maxBedrooms"),
		MinBathrooms: pint("minBathrooms"),
		MaxBathrooms: pint("maxBathrooms"),
		MinCapacity:  pint("minGuests"),
		MaxCapacity:  pint("maxGuests"),
		MinArea:      pint("minArea"),
		MaxArea:      pint("maxArea"),

		StartDate: pdate("startDate"),
		EndDate:   pdate("endDate"),

		MinDuration: pint("minDuration"),
		MaxDuration: pint("maxDuration"),
	}
	// events use participants for the same capacity bounds
	if v := pint("minParticipants"); v != nil {
		c.MinCapacity = v
	}
	if v := pint("maxParticipants"); v != nil {
		c.MaxCapacity = v
	}

	var page app.Page
	if v := pint("limit"); v != nil {
		if *v <= 0 || *v > 200 {
			return c, page, errInvalidParam("limit")
		}
		page.Limit = *v
	}
	if v := pint("offset"); v != nil {
		if *v < 0 {
			return c, page, errInvalidParam("offset")
		}
		page.Offset = *v
	}
	return c, page, perr
}

type paramError string

func (e paramError) Error() string { return "invalid value for " + string(e) }

func errInvalidParam(k string) error { return paramError(k) }
