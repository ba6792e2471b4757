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

type likeDoctorRepository struct{}

func NewLikeDoctorRepository() domainRepo.LikeDoctorRepository {
	return &likeDoctorRepository{}
}

// Upsert relies on the unique (user_id, doctor_id) index so concurrent toggles
// for the same pair can never produce two rows.
func (r *likeDoctorRepository) Upsert(ctx context.Context, db *gorm.DB, like *entity.LikeDoctor) error {
	return db.WithContext(ctx).Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "doctor_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"favourite", "last_updated_date", "last_updated_by"}),
	}).Create(like).Error
}

func (r *likeDoctorRepository) FindByUserAndDoctor(ctx context.Context, db *gorm.DB, userID, doctorID uuid.UUID) (*entity.LikeDoctor, error) {
	var like entity.LikeDoctor
	err := db.WithContext(ctx).Where("user_id = ? AND doctor_id = ?", userID, doctorID).First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

func (r *likeDoctorRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]entity.LikeDoctor, error) {
	var likes []entity.LikeDoctor
	err := db.WithContext(ctx).Where("user_id = ?", userID).Find(&likes).Error
	if err != nil {
		return nil, err
	}
	return likes, nil
}
