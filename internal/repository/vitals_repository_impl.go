package repository

import (
	"context"

	"healthcare-backend/internal/domain/entity"
	domainRepo "healthcare-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type vitalsRepository struct{}

func NewVitalsRepository() domainRepo.VitalsRepository {
	return &vitalsRepository{}
}

func (r *vitalsRepository) Create(ctx context.Context, db *gorm.DB, vitals *entity.Vitals) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(vitals).Error
}

func (r *vitalsRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Vitals, error) {
	var vitals []entity.Vitals
	err := db.WithContext(ctx).Where("patient_id = ?", patientID).Order("date DESC, created_at DESC").Find(&vitals).Error
	if err != nil {
		return nil, err
	}
	return vitals, nil
}
