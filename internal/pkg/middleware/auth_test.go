package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/serahterima/serahterima/internal/pkg/jwt"
	"github.com/serahterima/serahterima/internal/pkg/models"
)

const testAccessSecret = "test-access-secret"

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		AccessSecret:  testAccessSecret,
		RefreshSecret: "test-refresh-secret",
		Issuer:        "serahterima",
	}
}

func signedToken(t *testing.T, role models.Role) (string, uuid.UUID) {
	t.Helper()
	account := &models.Account{
		ID:         uuid.New(),
		EmployeeID: "EMP-0042",
		Role:       role,
	}
	token, _, err := jwtpkg.GenerateAccessToken(account, testJWTConfig())
	require.NoError(t, err)
	return token, account.ID
}

func runProtected(t *testing.T, mw []echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}
	for i := len(mw) - 1; i >= 0; i-- {
		handler = mw[i](handler)
	}
	require.NoError(t, handler(c))
	return rec, c
}

func errorCodeOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	code, _ := body["error_code"].(string)
	return code
}

func TestAuthenticate_ValidToken(t *testing.T) {
	token, accountID := signedToken(t, models.RoleStaff)

	rec, c := runProtected(t, []echo.MiddlewareFunc{Authenticate(testJWTConfig())}, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, accountID, c.Get(ContextAccountID))
	assert.Equal(t, "EMP-0042", c.Get(ContextEmployeeID))
	assert.Equal(t, models.RoleStaff, c.Get(ContextRole))
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	rec, _ := runProtected(t, []echo.MiddlewareFunc{Authenticate(testJWTConfig())}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, CodeAuthRequired, errorCodeOf(t, rec))
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "No scheme", header: "some-token"},
		{name: "Wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "Empty token", header: "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := runProtected(t, []echo.MiddlewareFunc{Authenticate(testJWTConfig())}, tt.header)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, CodeAuthRequired, errorCodeOf(t, rec))
		})
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	rec, _ := runProtected(t, []echo.MiddlewareFunc{Authenticate(testJWTConfig())}, "Bearer not.a.token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, CodeInvalidToken, errorCodeOf(t, rec))
}

func TestAuthenticate_WrongSecret(t *testing.T) {
	account := &models.Account{ID: uuid.New(), EmployeeID: "EMP-0042", Role: models.RoleAdmin}
	token, _, err := jwtpkg.GenerateAccessToken(account, models.JWTConfig{
		AccessSecret: "a-different-secret",
		Issuer:       "serahterima",
	})
	require.NoError(t, err)

	rec, _ := runProtected(t, []echo.MiddlewareFunc{Authenticate(testJWTConfig())}, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, CodeInvalidToken, errorCodeOf(t, rec))
}

func TestRequireRole_Allowed(t *testing.T) {
	token, _ := signedToken(t, models.RoleAdmin)

	rec, _ := runProtected(t, []echo.MiddlewareFunc{
		Authenticate(testJWTConfig()),
		RequireRole(models.RoleAdmin, models.RoleStaff),
	}, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_Denied(t *testing.T) {
	// No hierarchy: staff is not admin
	token, _ := signedToken(t, models.RoleStaff)

	rec, _ := runProtected(t, []echo.MiddlewareFunc{
		Authenticate(testJWTConfig()),
		RequireRole(models.RoleAdmin),
	}, "Bearer "+token)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, CodeAccessDenied, errorCodeOf(t, rec))
}

func TestRequireRole_ViewerDeniedStaffRoute(t *testing.T) {
	token, _ := signedToken(t, models.RoleViewer)

	rec, _ := runProtected(t, []echo.MiddlewareFunc{
		Authenticate(testJWTConfig()),
		RequireRole(models.RoleAdmin, models.RoleStaff),
	}, "Bearer "+token)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, CodeAccessDenied, errorCodeOf(t, rec))
}

func TestRequireRole_WithoutAuthenticate(t *testing.T) {
	// RequireRole with no identity in context rejects as unauthenticated
	rec, _ := runProtected(t, []echo.MiddlewareFunc{
		RequireRole(models.RoleAdmin),
	}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, CodeAuthRequired, errorCodeOf(t, rec))
}

func TestOptionalAuth(t *testing.T) {
	t.Run("No token passes through anonymously", func(t *testing.T) {
		rec, c := runProtected(t, []echo.MiddlewareFunc{OptionalAuth(testJWTConfig())}, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, c.Get(ContextAccountID))
	})

	t.Run("Valid token attaches identity", func(t *testing.T) {
		token, accountID := signedToken(t, models.RoleViewer)

		rec, c := runProtected(t, []echo.MiddlewareFunc{OptionalAuth(testJWTConfig())}, "Bearer "+token)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, accountID, c.Get(ContextAccountID))
	})

	t.Run("Invalid token passes through anonymously", func(t *testing.T) {
		rec, c := runProtected(t, []echo.MiddlewareFunc{OptionalAuth(testJWTConfig())}, "Bearer garbage")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, c.Get(ContextAccountID))
	})
}

func TestAccountIDFromContext(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	_, ok := AccountIDFromContext(c)
	assert.False(t, ok)

	accountID := uuid.New()
	c.Set(ContextAccountID, accountID)

	got, ok := AccountIDFromContext(c)
	assert.True(t, ok)
	assert.Equal(t, accountID, got)
}
