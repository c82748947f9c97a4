package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/serahterima/serahterima/internal/pkg/middleware"
	"github.com/serahterima/serahterima/internal/pkg/models"
	"github.com/serahterima/serahterima/services/auth/handler/http"
)

// Handler coordinates the HTTP handlers of the auth service
type Handler struct {
	authHandler    *http.AuthHandler
	accountHandler *http.AccountHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	accountHandler *http.AccountHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:    authHandler,
		accountHandler: accountHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers all routes of the auth service
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authenticate := middleware.Authenticate(h.cfg.JWT)

	// Public routes (no authentication required)
	authGroup := e.Group("/auth")
	authGroup.POST("/request-otp", h.authHandler.RequestOTP)
	authGroup.POST("/verify-otp", h.authHandler.VerifyOTP)
	authGroup.POST("/refresh", h.authHandler.Refresh)

	// Session routes for authenticated accounts
	authGroup.POST("/logout", h.authHandler.Logout, authenticate)
	authGroup.POST("/logout-all", h.authHandler.LogoutAll, authenticate)
	authGroup.GET("/me", h.authHandler.Me, authenticate)

	// Account administration
	accountGroup := e.Group("/accounts", authenticate)
	accountGroup.POST("", h.accountHandler.CreateAccount, middleware.RequireRole(models.RoleAdmin))
	accountGroup.GET("", h.accountHandler.ListAccounts, middleware.RequireRole(models.RoleAdmin))
	accountGroup.GET("/:id", h.accountHandler.GetAccount, middleware.RequireRole(models.RoleAdmin, models.RoleStaff))
	accountGroup.PATCH("/:id/role", h.accountHandler.UpdateRole, middleware.RequireRole(models.RoleAdmin))
	accountGroup.PATCH("/:id/status", h.accountHandler.UpdateStatus, middleware.RequireRole(models.RoleAdmin))
}
