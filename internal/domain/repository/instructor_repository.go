package repository

import (
	"context"

	"healthcare-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InstructorRepository interface {
	Create(ctx context.Context, db *gorm.DB, instructor *entity.Instructor) error
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.Instructor, error)
	FirstOrCreate(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.Instructor, error)
	Update(ctx context.Context, db *gorm.DB, instructor *entity.Instructor) error
}
