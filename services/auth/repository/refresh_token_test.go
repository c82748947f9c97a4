package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/serahterima/serahterima/internal/pkg/models"
)

func refreshTokenRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "account_id", "token_hash", "expires_at", "revoked", "revoked_at",
		"issued_ip", "user_agent", "created_at",
	})
}

func TestCreateRefreshToken(t *testing.T) {
	repo, mock, cleanup := setupAuthRepoTest(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO refresh_tokens").
		WillReturnResult(sqlmock.NewResult(0, 1))

	token := &models.RefreshToken{
		AccountID: uuid.New(),
		TokenHash: "aabbccdd",
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
		IssuedIP:  "10.0.0.1",
	}

	err := repo.CreateRefreshToken(context.Background(), token)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, token.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRefreshTokenByHash(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		repo, mock, cleanup := setupAuthRepoTest(t)
		defer cleanup()

		tokenID := uuid.New()
		accountID := uuid.New()
		rows := refreshTokenRows().
			AddRow(tokenID, accountID, "aabbccdd", time.Now().Add(24*time.Hour), false, nil, "10.0.0.1", "go-test", time.Now())
		mock.ExpectQuery("SELECT (.+) FROM refresh_tokens").
			WithArgs("aabbccdd").
			WillReturnRows(rows)

		token, err := repo.GetRefreshTokenByHash(context.Background(), "aabbccdd")
		assert.NoError(t, err)
		assert.NotNil(t, token)
		assert.Equal(t, tokenID, token.ID)
		assert.Equal(t, accountID, token.AccountID)
		assert.False(t, token.Revoked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown hash", func(t *testing.T) {
		repo, mock, cleanup := setupAuthRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("SELECT (.+) FROM refresh_tokens").
			WithArgs("deadbeef").
			WillReturnRows(refreshTokenRows())

		token, err := repo.GetRefreshTokenByHash(context.Background(), "deadbeef")
		assert.NoError(t, err)
		assert.Nil(t, token)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRevokeRefreshToken(t *testing.T) {
	t.Run("Revokes live token", func(t *testing.T) {
		repo, mock, cleanup := setupAuthRepoTest(t)
		defer cleanup()

		mock.ExpectExec("UPDATE refresh_tokens").
			WithArgs(sqlmock.AnyArg(), "aabbccdd").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.RevokeRefreshToken(context.Background(), "aabbccdd")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Idempotent on already-revoked token", func(t *testing.T) {
		repo, mock, cleanup := setupAuthRepoTest(t)
		defer cleanup()

		mock.ExpectExec("UPDATE refresh_tokens").
			WithArgs(sqlmock.AnyArg(), "aabbccdd").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.RevokeRefreshToken(context.Background(), "aabbccdd")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRevokeAllRefreshTokens(t *testing.T) {
	repo, mock, cleanup := setupAuthRepoTest(t)
	defer cleanup()

	accountID := uuid.New()
	mock.ExpectExec("UPDATE refresh_tokens").
		WithArgs(sqlmock.AnyArg(), accountID).
		WillReturnResult(sqlmock.NewResult(0, 3))

	err := repo.RevokeAllRefreshTokens(context.Background(), accountID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurgeRefreshTokens(t *testing.T) {
	repo, mock, cleanup := setupAuthRepoTest(t)
	defer cleanup()

	mock.ExpectExec("DELETE FROM refresh_tokens").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 5))

	rows, err := repo.PurgeRefreshTokens(context.Background(), 30*24*time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
