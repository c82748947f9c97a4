package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/serahterima/serahterima/internal/pkg/models"
	"github.com/serahterima/serahterima/internal/utils"
	"github.com/serahterima/serahterima/services/auth"
	"github.com/serahterima/serahterima/services/auth/mocks"
)

func TestAuthUC_Refresh_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockNotifierGW(ctrl)
	cfg := testConfig()

	uc := NewAuthUC(mockRepo, mockGW, cfg)

	account := activeAccount()
	plaintext := "client-held-refresh-secret"
	hash := utils.HashRefreshSecret(plaintext, cfg.JWT.RefreshSecret)

	mockRepo.EXPECT().
		GetRefreshTokenByHash(gomock.Any(), hash).
		Return(&models.RefreshToken{
			ID:        uuid.New(),
			AccountID: account.ID,
			TokenHash: hash,
			ExpiresAt: time.Now().Add(24 * time.Hour),
		}, nil)
	mockRepo.EXPECT().
		GetAccountByID(gomock.Any(), account.ID).
		Return(account, nil)
	mockRepo.EXPECT().
		GetProfileByAccountID(gomock.Any(), account.ID).
		Return(&models.UserProfile{
			AccountID:  account.ID,
			EmployeeID: account.EmployeeID,
			Role:       account.Role,
		}, nil)

	// Act
	session, err := uc.Refresh(context.Background(), plaintext)

	// Assert: new access token, refresh token untouched
	assert.NoError(t, err)
	assert.NotNil(t, session)
	assert.NotEmpty(t, session.AccessToken)
	assert.Empty(t, session.RefreshToken)
}

func TestAuthUC_Refresh_UnknownToken(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockNotifierGW(ctrl)

	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().
		GetRefreshTokenByHash(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	// Act
	session, err := uc.Refresh(context.Background(), "no-such-token")

	// Assert
	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
	assert.Nil(t, session)
}

func TestAuthUC_Refresh_ExpiredToken(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockNotifierGW(ctrl)

	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().
		GetRefreshTokenByHash(gomock.Any(), gomock.Any()).
		Return(&models.RefreshToken{
			ID:        uuid.New(),
			AccountID: uuid.New(),
			ExpiresAt: time.Now().Add(-time.Hour),
		}, nil)

	// Act
	session, err := uc.Refresh(context.Background(), "expired-token")

	// Assert
	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
	assert.Nil(t, session)
}

func TestAuthUC_Refresh_RevokedToken(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockNotifierGW(ctrl)

	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().
		GetRefreshTokenByHash(gomock.Any(), gomock.Any()).
		Return(&models.RefreshToken{
			ID:        uuid.New(),
			AccountID: uuid.New(),
			ExpiresAt: time.Now().Add(24 * time.Hour),
			Revoked:   true,
		}, nil)

	// Act
	session, err := uc.Refresh(context.Background(), "revoked-token")

	// Assert
	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
	assert.Nil(t, session)
}

func TestAuthUC_Refresh_InactiveAccount(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockNotifierGW(ctrl)

	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	account := activeAccount()
	account.IsActive = false

	mockRepo.EXPECT().
		GetRefreshTokenByHash(gomock.Any(), gomock.Any()).
		Return(&models.RefreshToken{
			ID:        uuid.New(),
			AccountID: account.ID,
			ExpiresAt: time.Now().Add(24 * time.Hour),
		}, nil)
	mockRepo.EXPECT().
		GetAccountByID(gomock.Any(), account.ID).
		Return(account, nil)

	// Act: deactivation after login kills the refresh path
	session, err := uc.Refresh(context.Background(), "token-of-deactivated")

	// Assert
	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
	assert.Nil(t, session)
}

func TestAuthUC_Refresh_VanishedAccount(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockNotifierGW(ctrl)

	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	accountID := uuid.New()

	mockRepo.EXPECT().
		GetRefreshTokenByHash(gomock.Any(), gomock.Any()).
		Return(&models.RefreshToken{
			ID:        uuid.New(),
			AccountID: accountID,
			ExpiresAt: time.Now().Add(24 * time.Hour),
		}, nil)
	mockRepo.EXPECT().
		GetAccountByID(gomock.Any(), accountID).
		Return(nil, auth.ErrAccountNotFound)

	// Act
	session, err := uc.Refresh(context.Background(), "token-of-deleted")

	// Assert
	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
	assert.Nil(t, session)
}

func TestAuthUC_Refresh_AccountLookupFailure(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockNotifierGW(ctrl)

	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	accountID := uuid.New()
	storeErr := errors.New("connection refused")

	mockRepo.EXPECT().
		GetRefreshTokenByHash(gomock.Any(), gomock.Any()).
		Return(&models.RefreshToken{
			ID:        uuid.New(),
			AccountID: accountID,
			ExpiresAt: time.Now().Add(24 * time.Hour),
		}, nil)
	mockRepo.EXPECT().
		GetAccountByID(gomock.Any(), accountID).
		Return(nil, storeErr)

	// Act: a store outage must not masquerade as a bad credential
	session, err := uc.Refresh(context.Background(), "valid-token")

	// Assert
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, auth.ErrInvalidRefreshToken)
	assert.Nil(t, session)
}

func TestAuthUC_Logout_EmptyToken(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockNotifierGW(ctrl)

	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	// Act: no repository call expected
	err := uc.Logout(context.Background(), "")

	// Assert
	assert.NoError(t, err)
}

func TestAuthUC_Logout_RevokesByHash(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockNotifierGW(ctrl)
	cfg := testConfig()

	uc := NewAuthUC(mockRepo, mockGW, cfg)

	plaintext := "client-held-refresh-secret"
	hash := utils.HashRefreshSecret(plaintext, cfg.JWT.RefreshSecret)

	mockRepo.EXPECT().
		RevokeRefreshToken(gomock.Any(), hash).
		Return(nil)

	// Act
	err := uc.Logout(context.Background(), plaintext)

	// Assert
	assert.NoError(t, err)
}

func TestAuthUC_LogoutAll_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockNotifierGW(ctrl)

	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	accountID := uuid.New()

	mockRepo.EXPECT().
		RevokeAllRefreshTokens(gomock.Any(), accountID).
		Return(nil)

	// Act
	err := uc.LogoutAll(context.Background(), accountID)

	// Assert
	assert.NoError(t, err)
}

func TestAuthUC_Me_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockNotifierGW(ctrl)

	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	accountID := uuid.New()
	expected := &models.UserProfile{
		AccountID:  accountID,
		EmployeeID: "EMP-0042",
		FullName:   "Budi Santoso",
		Role:       models.RoleStaff,
	}

	mockRepo.EXPECT().
		GetProfileByAccountID(gomock.Any(), accountID).
		Return(expected, nil)

	// Act
	profile, err := uc.Me(context.Background(), accountID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, expected, profile)
}
