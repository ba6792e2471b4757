package usecase

import (
	"context"
	"errors"

	"healthcare-backend/internal/converter"
	"healthcare-backend/internal/delivery/dto"
	"healthcare-backend/internal/domain/entity"
	"healthcare-backend/internal/domain/repository"
	"healthcare-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrFeedbackNotFound = errors.New("feedback not found")

type FeedbackUsecase interface {
	CreateFeedback(ctx context.Context, userID uuid.UUID, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error)
	GetMyFeedbacks(ctx context.Context, userID uuid.UUID) (*dto.FeedbackListResponse, error)
	GetAllFeedbacks(ctx context.Context) (*dto.FeedbackListResponse, error)
	ReplyFeedback(ctx context.Context, adminID, id uuid.UUID, req *dto.ReplyFeedbackRequest) (*dto.FeedbackResponse, error)
}

type feedbackUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	feedbackRepo repository.FeedbackRepository
	auditService service.AuditService
}

func NewFeedbackUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	feedbackRepo repository.FeedbackRepository,
	auditService service.AuditService,
) FeedbackUsecase {
	return &feedbackUsecase{
		db:           db,
		log:          log,
		feedbackRepo: feedbackRepo,
		auditService: auditService,
	}
}

func (u *feedbackUsecase) CreateFeedback(ctx context.Context, userID uuid.UUID, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error) {
	feedback := &entity.Feedback{
		UserID:          userID,
		Subject:         req.Subject,
		Message:         req.Message,
		Ratings:         req.Ratings,
		LastUpdatedByID: &userID,
	}

	if err := u.feedbackRepo.Create(ctx, u.db, feedback); err != nil {
		u.log.Warnf("Failed to create feedback: %+v", err)
		return nil, err
	}

	return converter.FeedbackToResponse(feedback), nil
}

func (u *feedbackUsecase) GetMyFeedbacks(ctx context.Context, userID uuid.UUID) (*dto.FeedbackListResponse, error) {
	feedbacks, err := u.feedbackRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find feedbacks: %+v", err)
		return nil, err
	}

	return &dto.FeedbackListResponse{
		Feedbacks: converter.FeedbacksToResponses(feedbacks),
		Total:     len(feedbacks),
	}, nil
}

func (u *feedbackUsecase) GetAllFeedbacks(ctx context.Context) (*dto.FeedbackListResponse, error) {
	feedbacks, err := u.feedbackRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all feedbacks: %+v", err)
		return nil, err
	}

	return &dto.FeedbackListResponse{
		Feedbacks: converter.FeedbacksToResponses(feedbacks),
		Total:     len(feedbacks),
	}, nil
}

func (u *feedbackUsecase) ReplyFeedback(ctx context.Context, adminID, id uuid.UUID, req *dto.ReplyFeedbackRequest) (*dto.FeedbackResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	feedback, err := u.feedbackRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find feedback: %+v", err)
		return nil, err
	}
	if feedback == nil {
		return nil, ErrFeedbackNotFound
	}

	reply := req.ReplyMessage
	feedback.Replied = true
	feedback.ReplyMessage = &reply
	feedback.LastUpdatedByID = &adminID

	if err := u.feedbackRepo.Update(ctx, tx, feedback); err != nil {
		u.log.Warnf("Failed to update feedback: %+v", err)
		return nil, err
	}

	if err := u.auditService.Log(ctx, tx, &adminID, entity.AuditActionFeedbackReply, entity.JSON{
		"feedback_id": feedback.ID.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.FeedbackToResponse(feedback), nil
}
