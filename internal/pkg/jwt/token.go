package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/serahterima/serahterima/internal/pkg/models"
)

// AccessTokenTTL is the fixed lifetime of an access token. Access tokens are
// stateless, so this window is also how long a revoked session can keep
// using one already in flight.
const AccessTokenTTL = 15 * time.Minute

// TokenTypeAccess is the value of the typ claim on access tokens. Verifying
// it rejects any other token family routed to the access-verification path.
const TokenTypeAccess = "access"

// ErrTokenExpired marks a structurally valid token whose lifetime has
// lapsed. Callers must treat it the same as any other invalid token toward
// the client; the distinction exists for logging only.
var ErrTokenExpired = errors.New("access token expired")

// ErrTokenInvalid covers every other verification failure.
var ErrTokenInvalid = errors.New("access token invalid")

// Claims represents the signed assertion carried by an access token.
type Claims struct {
	AccountID  uuid.UUID `json:"account_id"`
	EmployeeID string    `json:"employee_id"`
	Role       string    `json:"role"`
	TokenType  string    `json:"typ"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs a short-lived access token for the account.
func GenerateAccessToken(account *models.Account, cfg models.JWTConfig) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(AccessTokenTTL)

	claims := Claims{
		AccountID:  account.ID,
		EmployeeID: account.EmployeeID,
		Role:       string(account.Role),
		TokenType:  TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.AccessSecret))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, expiresAt.Unix(), nil
}

// ValidateAccessToken verifies signature, expiry and token type. It returns
// ErrTokenExpired or ErrTokenInvalid; nothing finer-grained leaves this
// package.
func ValidateAccessToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.TokenType != TokenTypeAccess {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
