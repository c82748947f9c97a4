package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/serahterima/serahterima/internal/pkg/database"
	"github.com/serahterima/serahterima/internal/pkg/models"
)

// AuthRepo implements the credential store over PostgreSQL and Redis.
type AuthRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
	cfg         *models.Config
}

// NewAuthRepo creates a new credential store instance
func NewAuthRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *AuthRepo {
	return &AuthRepo{
		db:          db,
		redisClient: redisClient,
		cfg:         cfg,
	}
}
