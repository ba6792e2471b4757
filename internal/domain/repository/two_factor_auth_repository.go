package repository

import (
	"context"

	"healthcare-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TwoFactorAuthRepository interface {
	Create(ctx context.Context, db *gorm.DB, auth *entity.TwoFactorAuth) error
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.TwoFactorAuth, error)
}
