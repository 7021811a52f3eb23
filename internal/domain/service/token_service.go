package service

import (
	"net/http"
	"time"

	"accounts/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenIssuer mints signed, stateless auth tokens.
type TokenIssuer interface {
	// Issue returns a signed token carrying the account id and display name.
	Issue(accountID uuid.UUID, name string) (string, error)
}

// TokenAuthenticator recovers an identity from an inbound token without a storage round trip.
type TokenAuthenticator interface {
	// ExtractToken reads a bearer credential from the request's Authorization header.
	ExtractToken(r *http.Request) (string, bool)

	// ResolveAccount verifies the token and returns the identity it claims.
	// Tampered, expired, or malformed tokens yield (nil, false).
	ResolveAccount(token string) (*entity.Identity, bool)
}

// TokenService is the full token lifecycle used by the application.
type TokenService interface {
	TokenIssuer
	TokenAuthenticator

	// TokenTTL returns the lifetime given to issued tokens.
	TokenTTL() time.Duration
}
