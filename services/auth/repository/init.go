package repository

import (
	"github.com/adesai/billbridge/internal/pkg/database"
	"github.com/adesai/billbridge/internal/pkg/models"
)

// AuthRepo manages OTP challenge persistence in Redis
type AuthRepo struct {
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewAuthRepo creates a new auth repository instance
func NewAuthRepo(cfg *models.Config, redisClient *database.RedisClient) *AuthRepo {
	return &AuthRepo{
		cfg:         cfg,
		redisClient: redisClient,
	}
}
