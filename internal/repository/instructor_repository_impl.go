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

type instructorRepository struct{}

func NewInstructorRepository() domainRepo.InstructorRepository {
	return &instructorRepository{}
}

func (r *instructorRepository) Create(ctx context.Context, db *gorm.DB, instructor *entity.Instructor) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(instructor).Error
}

func (r *instructorRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.Instructor, error) {
	var instructor entity.Instructor
	err := db.WithContext(ctx).Where("user_id = ?", userID).First(&instructor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &instructor, nil
}

func (r *instructorRepository) FirstOrCreate(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.Instructor, error) {
	instructor, err := r.FindByUserID(ctx, db, userID)
	if err != nil || instructor != nil {
		return instructor, err
	}
	instructor = &entity.Instructor{UserID: userID}
	if err := r.Create(ctx, db, instructor); err != nil {
		return nil, err
	}
	return instructor, nil
}

func (r *instructorRepository) Update(ctx context.Context, db *gorm.DB, instructor *entity.Instructor) error {
	return db.WithContext(ctx).Omit(clause.Associations).Save(instructor).Error
}
