package repository

import (
	"context"

	"healthcare-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VitalsRepository interface {
	Create(ctx context.Context, db *gorm.DB, vitals *entity.Vitals) error
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Vitals, error)
}
