package repository

import (
	"context"

	"healthcare-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserProfileRepository interface {
	Create(ctx context.Context, db *gorm.DB, profile *entity.UserProfile) error
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.UserProfile, error)
	FirstOrCreate(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.UserProfile, error)
	FindAllByUserType(ctx context.Context, db *gorm.DB, userType entity.UserType) ([]entity.UserProfile, error)
	Update(ctx context.Context, db *gorm.DB, profile *entity.UserProfile) error
}
