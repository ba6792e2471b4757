package usecase

import (
	"context"

	"healthcare-backend/internal/converter"
	"healthcare-backend/internal/delivery/dto"
	"healthcare-backend/internal/domain/entity"
	"healthcare-backend/internal/domain/repository"
	"healthcare-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type LikeDoctorUsecase interface {
	// Toggle records userID's like or dislike of a doctor. Repeating it for the
	// same doctor overwrites the previous value.
	Toggle(ctx context.Context, userID uuid.UUID, req *dto.LikeDoctorRequest) (*dto.LikeDoctorResponse, error)
}

type likeDoctorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	likeRepo     repository.LikeDoctorRepository
	auditService service.AuditService
}

func NewLikeDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	likeRepo repository.LikeDoctorRepository,
	auditService service.AuditService,
) LikeDoctorUsecase {
	return &likeDoctorUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		likeRepo:     likeRepo,
		auditService: auditService,
	}
}

func (u *likeDoctorUsecase) Toggle(ctx context.Context, userID uuid.UUID, req *dto.LikeDoctorRequest) (*dto.LikeDoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(ctx, tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	favourite := req.Favourite
	like := &entity.LikeDoctor{
		UserID:          userID,
		DoctorID:        req.DoctorID,
		Favourite:       &favourite,
		LastUpdatedByID: &userID,
	}
	if err := u.likeRepo.Upsert(ctx, tx, like); err != nil {
		if isForeignKeyError(err, "doctor") {
			return nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to upsert like: %+v", err)
		return nil, err
	}

	// Reload so the response carries the id of the row that survived the upsert.
	stored, err := u.likeRepo.FindByUserAndDoctor(ctx, tx, userID, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to reload like: %+v", err)
		return nil, err
	}

	if err := u.auditService.Log(ctx, tx, &userID, entity.AuditActionDoctorLike, entity.JSON{
		"doctor_id": req.DoctorID.String(),
		"favourite": favourite,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.LikeDoctorToResponse(stored), nil
}
