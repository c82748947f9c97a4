package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/serahterima/serahterima/internal/pkg/logger"
	"github.com/serahterima/serahterima/internal/pkg/middleware"
	"github.com/serahterima/serahterima/internal/pkg/models"
	"github.com/serahterima/serahterima/internal/utils"
	"github.com/serahterima/serahterima/services/auth"
)

const (
	refreshCookieName = "refreshToken"
	refreshCookiePath = "/auth"
)

// requestOTPMessage is returned for every non-rate-limited code request,
// whether or not the employee id resolves to an account.
const requestOTPMessage = "If an account exists for this employee ID, a login code has been sent"

// AuthHandler handles HTTP requests for the login lifecycle
type AuthHandler struct {
	authUC auth.AuthUC
	cfg    *models.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC, cfg *models.Config) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		cfg:    cfg,
	}
}

// RequestOTP handles login-code requests
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req models.RequestOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.EmployeeID == "" {
		return utils.BadRequestResponse(c, "Employee ID is required")
	}

	input := &models.RequestOTPInput{
		EmployeeID: req.EmployeeID,
		IP:         c.RealIP(),
		UserAgent:  c.Request().UserAgent(),
	}

	if err := h.authUC.RequestOTP(c.Request().Context(), input); err != nil {
		if errors.Is(err, auth.ErrRateLimited) {
			return utils.TooManyRequestsResponse(c, "Too many code requests, try again later")
		}
		logger.Error("Failed to process OTP request",
			logger.String("employee_id", req.EmployeeID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to process request")
	}

	return utils.SuccessResponse(c, http.StatusOK, requestOTPMessage, nil)
}

func validOTPShape(code string) bool {
	if len(code) != 6 {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// VerifyOTP handles code verification and opens a session on success
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.EmployeeID == "" {
		return utils.BadRequestResponse(c, "Employee ID is required")
	}
	if !validOTPShape(req.OTPCode) {
		return utils.BadRequestResponse(c, "OTP code must be 6 digits")
	}

	input := &models.VerifyOTPInput{
		EmployeeID: req.EmployeeID,
		Code:       req.OTPCode,
		IP:         c.RealIP(),
		UserAgent:  c.Request().UserAgent(),
	}

	session, err := h.authUC.VerifyOTP(c.Request().Context(), input)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid or expired code")
		}
		logger.Error("Failed to verify OTP",
			logger.String("employee_id", req.EmployeeID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to process request")
	}

	h.setRefreshCookie(c, session.RefreshToken, session.RefreshExpiresAt)

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", echo.Map{
		"access_token":      session.AccessToken,
		"access_expires_at": session.AccessExpiresAt,
		"user":              session.User,
	})
}

// Refresh mints a new access token against the refresh cookie. Any failure
// clears the cookie to force a clean re-login.
func (h *AuthHandler) Refresh(c echo.Context) error {
	cookie, err := c.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		return utils.ErrorCodeResponse(c, http.StatusUnauthorized, middleware.CodeAuthRequired, "Refresh token required")
	}

	session, err := h.authUC.Refresh(c.Request().Context(), cookie.Value)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidRefreshToken) {
			h.clearRefreshCookie(c)
			return utils.ErrorCodeResponse(c, http.StatusUnauthorized, middleware.CodeInvalidToken, "Invalid refresh token")
		}
		// A store failure is not a credential failure; keep the cookie so the
		// client can retry.
		logger.Error("Failed to refresh session", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to process request")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Token refreshed", echo.Map{
		"access_token":      session.AccessToken,
		"access_expires_at": session.AccessExpiresAt,
		"user":              session.User,
	})
}

// Logout revokes the refresh token presented via cookie and clears it.
// Idempotent: succeeds with no cookie or an already-revoked token.
func (h *AuthHandler) Logout(c echo.Context) error {
	var refreshToken string
	if cookie, err := c.Cookie(refreshCookieName); err == nil {
		refreshToken = cookie.Value
	}

	if err := h.authUC.Logout(c.Request().Context(), refreshToken); err != nil {
		logger.Error("Failed to revoke refresh token", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to process request")
	}

	h.clearRefreshCookie(c)

	return utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

// LogoutAll revokes every refresh token of the authenticated account
func (h *AuthHandler) LogoutAll(c echo.Context) error {
	accountID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		return utils.ErrorCodeResponse(c, http.StatusUnauthorized, middleware.CodeAuthRequired, "Authentication required")
	}

	if err := h.authUC.LogoutAll(c.Request().Context(), accountID); err != nil {
		logger.Error("Failed to revoke sessions",
			logger.String("account_id", accountID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to process request")
	}

	h.clearRefreshCookie(c)

	return utils.SuccessResponse(c, http.StatusOK, "Logged out everywhere", nil)
}

// Me returns the authenticated account's profile projection
func (h *AuthHandler) Me(c echo.Context) error {
	accountID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		return utils.ErrorCodeResponse(c, http.StatusUnauthorized, middleware.CodeAuthRequired, "Authentication required")
	}

	profile, err := h.authUC.Me(c.Request().Context(), accountID)
	if err != nil {
		if errors.Is(err, auth.ErrAccountNotFound) {
			return utils.NotFoundResponse(c, "Account not found")
		}
		logger.Error("Failed to load profile",
			logger.String("account_id", accountID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to process request")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved", profile)
}

func (h *AuthHandler) setRefreshCookie(c echo.Context, token string, expiresAt time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     refreshCookiePath,
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.App.IsProduction(),
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) clearRefreshCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     refreshCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.App.IsProduction(),
		SameSite: http.SameSiteStrictMode,
	})
}
