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

type userProfileRepository struct{}

func NewUserProfileRepository() domainRepo.UserProfileRepository {
	return &userProfileRepository{}
}

func (r *userProfileRepository) Create(ctx context.Context, db *gorm.DB, profile *entity.UserProfile) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(profile).Error
}

func (r *userProfileRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	err := db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *userProfileRepository) FirstOrCreate(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.UserProfile, error) {
	profile, err := r.FindByUserID(ctx, db, userID)
	if err != nil || profile != nil {
		return profile, err
	}
	profile = &entity.UserProfile{UserID: userID, UserType: entity.UserTypePatient}
	if err := r.Create(ctx, db, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (r *userProfileRepository) FindAllByUserType(ctx context.Context, db *gorm.DB, userType entity.UserType) ([]entity.UserProfile, error) {
	var profiles []entity.UserProfile
	err := db.WithContext(ctx).
		Preload("User").
		Where("user_type = ?", userType).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *userProfileRepository) Update(ctx context.Context, db *gorm.DB, profile *entity.UserProfile) error {
	return db.WithContext(ctx).Omit(clause.Associations).Save(profile).Error
}
