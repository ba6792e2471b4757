package repository

import (
	"context"

	"healthcare-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientInfoRepository interface {
	Create(ctx context.Context, db *gorm.DB, info *entity.PatientInfo) error
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.PatientInfo, error)
	FirstOrCreate(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.PatientInfo, error)
	Update(ctx context.Context, db *gorm.DB, info *entity.PatientInfo) error
}
