package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serahterima/serahterima/internal/pkg/models"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		AccessSecret:  "test-access-secret",
		RefreshSecret: "test-refresh-secret",
		Issuer:        "serahterima",
	}
}

func testAccount() *models.Account {
	return &models.Account{
		ID:         uuid.New(),
		EmployeeID: "EMP-0042",
		Role:       models.RoleStaff,
		IsActive:   true,
	}
}

func TestGenerateAccessToken(t *testing.T) {
	account := testAccount()
	cfg := testJWTConfig()

	token, expiresAt, err := GenerateAccessToken(account, cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// 15-minute lifetime
	assert.InDelta(t, time.Now().Add(AccessTokenTTL).Unix(), expiresAt, 2)

	claims, err := ValidateAccessToken(token, cfg.AccessSecret)
	require.NoError(t, err)
	assert.Equal(t, account.ID, claims.AccountID)
	assert.Equal(t, "EMP-0042", claims.EmployeeID)
	assert.Equal(t, "staff", claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.Equal(t, "serahterima", claims.Issuer)
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	token, _, err := GenerateAccessToken(testAccount(), testJWTConfig())
	require.NoError(t, err)

	claims, err := ValidateAccessToken(token, "some-other-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestValidateAccessToken_Expired(t *testing.T) {
	cfg := testJWTConfig()
	account := testAccount()

	// Hand-build a token whose lifetime already lapsed
	now := time.Now()
	claims := Claims{
		AccountID: account.ID,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    cfg.Issuer,
			IssuedAt:  jwtlib.NewNumericDate(now.Add(-time.Hour)),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(-30 * time.Minute)),
		},
	}
	tokenString, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).
		SignedString([]byte(cfg.AccessSecret))
	require.NoError(t, err)

	parsed, err := ValidateAccessToken(tokenString, cfg.AccessSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.Nil(t, parsed)
}

func TestValidateAccessToken_WrongTokenType(t *testing.T) {
	cfg := testJWTConfig()

	// A structurally valid token of another family must not pass access
	// verification
	now := time.Now()
	claims := Claims{
		AccountID: uuid.New(),
		TokenType: "refresh",
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(time.Hour)),
		},
	}
	tokenString, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).
		SignedString([]byte(cfg.AccessSecret))
	require.NoError(t, err)

	parsed, err := ValidateAccessToken(tokenString, cfg.AccessSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.Nil(t, parsed)
}

func TestValidateAccessToken_WrongSigningMethod(t *testing.T) {
	// alg=none must be rejected outright
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, jwtlib.MapClaims{
		"account_id": uuid.New().String(),
		"typ":        TokenTypeAccess,
	})
	tokenString, err := token.SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	parsed, err := ValidateAccessToken(tokenString, "test-access-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.Nil(t, parsed)
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	parsed, err := ValidateAccessToken("not-a-jwt", "test-access-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.Nil(t, parsed)
}
