package repository

import (
	"context"
	"errors"

	"healthcare-backend/internal/domain/entity"
	domainRepo "healthcare-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type patientInfoRepository struct{}

func NewPatientInfoRepository() domainRepo.PatientInfoRepository {
	return &patientInfoRepository{}
}

func (r *patientInfoRepository) Create(ctx context.Context, db *gorm.DB, info *entity.PatientInfo) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(info).Error
}

func (r *patientInfoRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.PatientInfo, error) {
	var info entity.PatientInfo
	err := db.WithContext(ctx).Where("user_id = ?", userID).First(&info).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &info, nil
}

func (r *patientInfoRepository) FirstOrCreate(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.PatientInfo, error) {
	info, err := r.FindByUserID(ctx, db, userID)
	if err != nil || info != nil {
		return info, err
	}
	info = entity.NewPatientInfo(userID)
	if err := r.Create(ctx, db, info); err != nil {
		return nil, err
	}
	return info, nil
}

func (r *patientInfoRepository) Update(ctx context.Context, db *gorm.DB, info *entity.PatientInfo) error {
	return db.WithContext(ctx).Omit(clause.Associations).Save(info).Error
}
