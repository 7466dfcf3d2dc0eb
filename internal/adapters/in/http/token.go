package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
)

const identityContextKey = "identity"

// ErrInvalidToken is returned when a bearer token is missing, expired, or
// fails signature verification.
var ErrInvalidToken = errors.New("invalid or missing bearer token")

// Claims is the JWT payload issued on login. The account ID travels in the
// registered subject claim.
type Claims struct {
	Role  string `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Identity is the authenticated caller extracted from a verified token.
type Identity struct {
	AccountID kernel.UUID
	Role      account.Role
	Email     string
}

// TokenIssuer signs and verifies the bearer tokens used by the API.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a token issuer with the given signing secret and
// token lifetime.
func NewTokenIssuer(secret string, ttl time.Duration) TokenIssuer {
	return TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token for the account.
func (t TokenIssuer) Issue(acc *account.Account) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Role:  acc.Role().String(),
		Email: acc.Email(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   acc.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify parses a signed token and reconstructs the caller's identity.
func (t TokenIssuer) Verify(raw string) (Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", ErrInvalidToken, token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	accountID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}
	role, err := account.RoleFromString(claims.Role)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	return Identity{
		AccountID: accountID,
		Role:      role,
		Email:     claims.Email,
	}, nil
}

// Middleware authenticates requests via the Authorization header and stores
// the caller's identity on the echo context.
func (t TokenIssuer) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}

			identity, err := t.Verify(raw)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid bearer token",
				})
			}

			ctx.Set(identityContextKey, identity)
			return next(ctx)
		}
	}
}

func currentIdentity(ctx echo.Context) (Identity, error) {
	identity, ok := ctx.Get(identityContextKey).(Identity)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	return identity, nil
}
