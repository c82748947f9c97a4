package database

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockClient(t *testing.T) (*PostgresClient, sqlmock.Sqlmock, func()) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	client := &PostgresClient{db: sqlx.NewDb(mockDB, "postgres")}
	return client, mock, func() { mockDB.Close() }
}

func TestPostgresClient_GetDB(t *testing.T) {
	client, mock, cleanup := newMockClient(t)
	defer cleanup()

	db := client.GetDB()
	assert.NotNil(t, db)
	assert.Equal(t, client.db, db)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresClient_Close(t *testing.T) {
	t.Run("Closes connection pool", func(t *testing.T) {
		mockDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		mock.ExpectClose()

		client := &PostgresClient{db: sqlx.NewDb(mockDB, "postgres")}

		assert.NoError(t, client.Close())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Propagates close error", func(t *testing.T) {
		mockDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		mock.ExpectClose().WillReturnError(sql.ErrConnDone)

		client := &PostgresClient{db: sqlx.NewDb(mockDB, "postgres")}

		assert.Equal(t, sql.ErrConnDone, client.Close())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresClient_Transactions(t *testing.T) {
	client, mock, cleanup := newMockClient(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := client.GetDB().Beginx()
	require.NoError(t, err)
	_, err = tx.Exec("INSERT INTO accounts (employee_ref) VALUES ($1)", "x")
	assert.NoError(t, err)
	assert.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresClient_Ping(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		client, mock, cleanup := newMockClient(t)
		defer cleanup()

		mock.ExpectPing()

		assert.NoError(t, client.GetDB().Ping())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unhealthy", func(t *testing.T) {
		client, mock, cleanup := newMockClient(t)
		defer cleanup()

		mock.ExpectPing().WillReturnError(sql.ErrConnDone)

		assert.Equal(t, sql.ErrConnDone, client.GetDB().Ping())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
