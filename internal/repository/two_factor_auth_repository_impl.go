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

type twoFactorAuthRepository struct{}

func NewTwoFactorAuthRepository() domainRepo.TwoFactorAuthRepository {
	return &twoFactorAuthRepository{}
}

func (r *twoFactorAuthRepository) Create(ctx context.Context, db *gorm.DB, auth *entity.TwoFactorAuth) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(auth).Error
}

func (r *twoFactorAuthRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.TwoFactorAuth, error) {
	var auth entity.TwoFactorAuth
	err := db.WithContext(ctx).Where("user_id = ?", userID).First(&auth).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &auth, nil
}
