package repository

import (
	"context"

	"healthcare-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedbackRepository interface {
	Create(ctx context.Context, db *gorm.DB, feedback *entity.Feedback) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Feedback, error)
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]entity.Feedback, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Feedback, error)
	Update(ctx context.Context, db *gorm.DB, feedback *entity.Feedback) error
}
