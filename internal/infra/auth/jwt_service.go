package auth

import (
	"net/http"
	"strings"
	"time"

	"accounts/config"
	"accounts/internal/domain/entity"
	"accounts/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const bearerScheme = "bearer"

// Claims defines the custom claims for auth tokens.
type Claims struct {
	AccountID uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte        // HMAC key for signing and verifying tokens.
	issuer string        // Value of the iss claim.
	ttl    time.Duration // Time-to-live for issued tokens.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl, issuer := config.DefaultTokenTTL, config.DefaultTokenIssuer
	if cfg.Auth != nil {
		if cfg.Auth.TokenTTL > 0 {
			ttl = cfg.Auth.TokenTTL
		}
		if cfg.Auth.TokenIssuer != "" {
			issuer = cfg.Auth.TokenIssuer
		}
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue creates a signed token for the given account.
func (s *jwtService) Issue(accountID uuid.UUID, name string) (string, error) {
	now := s.now()
	claims := Claims{
		AccountID: accountID,
		Name:      name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return token, nil
}

// ExtractToken reads "Authorization: Bearer <token>". The scheme is case-insensitive.
func (s *jwtService) ExtractToken(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}

	scheme, token, found := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	return token, true
}

// ResolveAccount validates the token and returns the identity it carries.
func (s *jwtService) ResolveAccount(tokenString string) (*entity.Identity, bool) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, false
	}

	identity := &entity.Identity{
		AccountID: claims.AccountID,
		Name:      claims.Name,
	}
	if claims.IssuedAt != nil {
		identity.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}

	return identity, true
}

// TokenTTL returns the configured token lifetime.
func (s *jwtService) TokenTTL() time.Duration {
	return s.ttl
}

func (s *jwtService) parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	if claims.AccountID == uuid.Nil {
		return nil, errors.New("token carries no account id")
	}

	return claims, nil
}
