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

type feedbackRepository struct{}

func NewFeedbackRepository() domainRepo.FeedbackRepository {
	return &feedbackRepository{}
}

func (r *feedbackRepository) Create(ctx context.Context, db *gorm.DB, feedback *entity.Feedback) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(feedback).Error
}

func (r *feedbackRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Feedback, error) {
	var feedback entity.Feedback
	err := db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&feedback).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]entity.Feedback, error) {
	var feedbacks []entity.Feedback
	err := db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&feedbacks).Error
	if err != nil {
		return nil, err
	}
	return feedbacks, nil
}

func (r *feedbackRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Feedback, error) {
	var feedbacks []entity.Feedback
	err := db.WithContext(ctx).Preload("User").Order("created_at DESC").Find(&feedbacks).Error
	if err != nil {
		return nil, err
	}
	return feedbacks, nil
}

func (r *feedbackRepository) Update(ctx context.Context, db *gorm.DB, feedback *entity.Feedback) error {
	return db.WithContext(ctx).Omit(clause.Associations).Save(feedback).Error
}
