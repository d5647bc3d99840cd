package cms

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"adriatic_listings/internal/adapters/observability"
	"adriatic_listings/internal/domain"
)

// Client talks to the content API. It satisfies domain.ContentStore.
// Transient upstream trouble (429/5xx/network) is retried with jittered
// backoff and finally wrapped in domain.ErrStoreUnavailable so callers can
// apply the degrade-to-canonical policy.
type Client struct {
	base string
	hc   *http.Client
	key  string
	rl   *rate.Limiter
}

func New(base, key string, rps int) (*Client, error) {
	if base == "" {
		return nil, fmt.Errorf("content API base URL is required")
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		key:  key,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// ---- domain.ContentStore ----

func (c *Client) GetByForeignID(ctx context.Context, kind domain.Kind, foreignID, locale string) (domain.ContentRecord, error) {
	u := fmt.Sprintf("%s/v1/content/%s/%s?locale=%s", c.base, kind, url.PathEscape(foreignID), url.QueryEscape(locale))
	var out domain.ContentRecord
	if err := c.do(ctx, http.MethodGet, u, nil, &out); err != nil {
		return domain.ContentRecord{}, err
	}
	return out, nil
}

func (c *Client) GetByForeignIDs(ctx context.Context, kind domain.Kind, foreignIDs []string, locale string) ([]domain.ContentRecord, error) {
	if len(foreignIDs) == 0 {
		return nil, nil
	}
	q := url.Values{}
	q.Set("ids", strings.Join(foreignIDs, ","))
	q.Set("locale", locale)
	u := fmt.Sprintf("%s/v1/content/%s?%s", c.base, kind, q.Encode())

	var out []domain.ContentRecord
	err := c.do(ctx, http.MethodGet, u, nil, &out)
	if errors.Is(err, domain.ErrNotFound) {
		// collection endpoint with no matches; same as an empty list
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateMinimal(ctx context.Context, kind domain.Kind, foreignID, title, location string) (string, error) {
	body := map[string]string{
		"foreignId": foreignID,
		"locale":    "en",
		"title":     title,
		"location":  location,
	}
	u := fmt.Sprintf("%s/v1/content/%s", c.base, kind)
	var out struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, u, body, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *Client) DeleteByForeignID(ctx context.Context, kind domain.Kind, foreignID string) error {
	u := fmt.Sprintf("%s/v1/content/%s/%s", c.base, kind, url.PathEscape(foreignID))
	err := c.do(ctx, http.MethodDelete, u, nil, nil)
	if errors.Is(err, domain.ErrNotFound) {
		// nothing authored for this id; deletion has nothing to do
		return nil
	}
	return err
}

// ---- internals ----

// do performs one request with client-side rate limiting and retries on 429
// and transient 5xx, honoring Retry-After when provided.
func (c *Client) do(ctx context.Context, method, u string, body any, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = b
	}

	endpoint := method + " " + pathOf(u)
	var lastErr error
	for i := 0; i < 4; i++ {
		req, err := http.NewRequestWithContext(ctx, method, u, bytes.NewReader(payload))
		if err != nil {
			return err
		}
		if c.key != "" {
			req.Header.Set("Authorization", "Bearer "+c.key)
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "adriatic-listings/1.0")

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}
		observability.ObserveExternal("content_api", endpoint, resp.StatusCode, time.Since(start))

		switch resp.StatusCode {
		case http.StatusOK, http.StatusCreated, http.StatusAccepted:
			if out == nil {
				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				return nil
			}
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return err

		case http.StatusNoContent:
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return nil

		case http.StatusNotFound:
			resp.Body.Close()
			return domain.ErrNotFound

		case http.StatusUnauthorized, http.StatusForbidden:
			resp.Body.Close()
			return domain.ErrNotAuthorized

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("%w: remote %d", domain.ErrStoreUnavailable, resp.StatusCode)
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}

	return lastErr
}

func pathOf(u string) string {
	if p, err := url.Parse(u); err == nil {
		return p.Path
	}
	return u
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After (seconds or HTTP-date). Returns 0 if absent/invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff returns an exponential delay (200ms, 400ms, 800ms...) with up to
// +50% concurrency-safe jitter.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	j := time.Duration(0.5 * f * float64(base))
	return base + j
}
