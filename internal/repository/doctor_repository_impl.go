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

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(doctor).Error
}

func (r *doctorRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.WithContext(ctx).Preload("User").Where("doctor_id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.WithContext(ctx).Where("user_id = ?", userID).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

// FindAll returns doctors whose account is active, optionally narrowed to one specialisation.
func (r *doctorRepository) FindAll(ctx context.Context, db *gorm.DB, specialized string) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	query := db.WithContext(ctx).
		Joins("JOIN users ON users.id = doctors.user_id").
		Where("users.is_active = ?", true)
	if specialized != "" {
		query = query.Where("doctors.specialized = ?", specialized)
	}
	err := query.Preload("User").Order("users.username ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FirstOrCreate(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error) {
	doctor, err := r.FindByUserID(ctx, db, userID)
	if err != nil || doctor != nil {
		return doctor, err
	}
	doctor = &entity.Doctor{UserID: userID}
	if err := r.Create(ctx, db, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

func (r *doctorRepository) Update(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error {
	return db.WithContext(ctx).Omit(clause.Associations).Save(doctor).Error
}
