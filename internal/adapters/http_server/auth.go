package httpserver

import (
	"context"
	"crypto/subtle"

	"adriatic_listings/internal/domain"
)

// StaticTokenVerifier accepts one pre-shared admin token from configuration.
// Real identity providers plug in behind the same domain.TokenVerifier port.
type StaticTokenVerifier struct{ Token string }

func (v StaticTokenVerifier) Verify(_ context.Context, token string) error {
	if v.Token == "" || token == "" {
		return domain.ErrNotAuthorized
	}
	if subtle.ConstantTimeCompare([]byte(v.Token), []byte(token)) != 1 {
		return domain.ErrNotAuthorized
	}
	return nil
}
