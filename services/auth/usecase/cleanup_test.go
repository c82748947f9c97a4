package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/serahterima/serahterima/services/auth/mocks"
)

func TestAuthUC_CleanupCredentials_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockNotifierGW(ctrl)

	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().
		PurgeExpiredOTPs(gomock.Any()).
		Return(int64(4), nil)
	mockRepo.EXPECT().
		PurgeRefreshTokens(gomock.Any(), 30*24*time.Hour).
		Return(int64(2), nil)

	// Act
	err := uc.CleanupCredentials(context.Background())

	// Assert
	assert.NoError(t, err)
}

func TestAuthUC_CleanupCredentials_OTPPurgeFails(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockNotifierGW(ctrl)

	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().
		PurgeExpiredOTPs(gomock.Any()).
		Return(int64(0), errors.New("db down"))

	// Act
	err := uc.CleanupCredentials(context.Background())

	// Assert
	assert.Error(t, err)
}

func TestAuthUC_StartCleanupWorker_RunsAndStops(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockNotifierGW(ctrl)

	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	ran := make(chan struct{}, 1)
	mockRepo.EXPECT().
		PurgeExpiredOTPs(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (int64, error) {
			select {
			case ran <- struct{}{}:
			default:
			}
			return 0, nil
		}).
		MinTimes(1)
	mockRepo.EXPECT().
		PurgeRefreshTokens(gomock.Any(), gomock.Any()).
		Return(int64(0), nil).
		MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())

	// Act
	uc.StartCleanupWorker(ctx, 10*time.Millisecond)

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("cleanup worker never ran")
	}
	cancel()

	// Give the goroutine a beat to observe cancellation
	time.Sleep(20 * time.Millisecond)
}
