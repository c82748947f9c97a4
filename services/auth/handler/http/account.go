package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/serahterima/serahterima/internal/pkg/logger"
	"github.com/serahterima/serahterima/internal/pkg/middleware"
	"github.com/serahterima/serahterima/internal/pkg/models"
	"github.com/serahterima/serahterima/internal/utils"
	"github.com/serahterima/serahterima/services/auth"
)

// CodeSelfActionForbidden marks administrative actions rejected because
// the actor targeted their own account
const CodeSelfActionForbidden = "SELF_ACTION_FORBIDDEN"

// AccountHandler handles HTTP requests for account administration
type AccountHandler struct {
	authUC auth.AuthUC
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(authUC auth.AuthUC) *AccountHandler {
	return &AccountHandler{
		authUC: authUC,
	}
}

func actorFromContext(c echo.Context) (uuid.UUID, error) {
	actorID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		return uuid.Nil, utils.ErrorCodeResponse(c, http.StatusUnauthorized, middleware.CodeAuthRequired, "Authentication required")
	}
	return actorID, nil
}

func accountIDParam(c echo.Context) (uuid.UUID, error) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, utils.BadRequestResponse(c, "Invalid account ID")
	}
	return accountID, nil
}

// CreateAccount provisions an account for an existing employee
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	actorID, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req models.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.EmployeeID == "" {
		return utils.BadRequestResponse(c, "Employee ID is required")
	}

	account, err := h.authUC.CreateAccount(c.Request().Context(), actorID, &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidRole):
			return utils.BadRequestResponse(c, "Invalid role")
		case errors.Is(err, auth.ErrEmployeeNotFound):
			return utils.NotFoundResponse(c, "Employee not found")
		case errors.Is(err, auth.ErrAccountExists):
			return utils.ConflictResponse(c, "Account already exists for this employee")
		}
		logger.Error("Failed to create account",
			logger.String("employee_id", req.EmployeeID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to create account")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Account created", account)
}

// ListAccounts returns all accounts with their employee identity
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.authUC.ListAccounts(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list accounts", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list accounts")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Accounts retrieved", accounts)
}

// GetAccount returns a single account by ID
func (h *AccountHandler) GetAccount(c echo.Context) error {
	accountID, err := accountIDParam(c)
	if err != nil {
		return err
	}

	account, err := h.authUC.GetAccount(c.Request().Context(), accountID)
	if err != nil {
		if errors.Is(err, auth.ErrAccountNotFound) {
			return utils.NotFoundResponse(c, "Account not found")
		}
		logger.Error("Failed to get account",
			logger.String("account_id", accountID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to get account")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Account retrieved", account)
}

// UpdateRole changes an account's role
func (h *AccountHandler) UpdateRole(c echo.Context) error {
	actorID, err := actorFromContext(c)
	if err != nil {
		return err
	}
	accountID, err := accountIDParam(c)
	if err != nil {
		return err
	}

	var req models.UpdateRoleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.authUC.UpdateAccountRole(c.Request().Context(), actorID, accountID, req.Role); err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidRole):
			return utils.BadRequestResponse(c, "Invalid role")
		case errors.Is(err, auth.ErrSelfAction):
			return utils.ErrorCodeResponse(c, http.StatusForbidden, CodeSelfActionForbidden, "Cannot change your own role")
		case errors.Is(err, auth.ErrAccountNotFound):
			return utils.NotFoundResponse(c, "Account not found")
		}
		logger.Error("Failed to update account role",
			logger.String("account_id", accountID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to update role")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Role updated", nil)
}

// UpdateStatus activates or deactivates an account
func (h *AccountHandler) UpdateStatus(c echo.Context) error {
	actorID, err := actorFromContext(c)
	if err != nil {
		return err
	}
	accountID, err := accountIDParam(c)
	if err != nil {
		return err
	}

	var req models.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.authUC.SetAccountActive(c.Request().Context(), actorID, accountID, req.IsActive); err != nil {
		switch {
		case errors.Is(err, auth.ErrSelfAction):
			return utils.ErrorCodeResponse(c, http.StatusForbidden, CodeSelfActionForbidden, "Cannot change your own status")
		case errors.Is(err, auth.ErrAccountNotFound):
			return utils.NotFoundResponse(c, "Account not found")
		}
		logger.Error("Failed to update account status",
			logger.String("account_id", accountID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to update status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Status updated", nil)
}
