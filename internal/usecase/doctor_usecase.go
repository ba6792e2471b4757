package usecase

import (
	"context"

	"healthcare-backend/internal/converter"
	"healthcare-backend/internal/delivery/dto"
	"healthcare-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DoctorUsecase interface {
	// ListDoctors shows each doctor with the favourite value set by viewerID.
	ListDoctors(ctx context.Context, viewerID uuid.UUID, specialized string) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, viewerID, doctorID uuid.UUID) (*dto.DoctorResponse, error)
}

type doctorUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	doctor   repository.DoctorRepository
	likeRepo repository.LikeDoctorRepository
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	likeRepo repository.LikeDoctorRepository,
) DoctorUsecase {
	return &doctorUsecase{
		db:       db,
		log:      log,
		doctor:   doctorRepo,
		likeRepo: likeRepo,
	}
}

func (u *doctorUsecase) ListDoctors(ctx context.Context, viewerID uuid.UUID, specialized string) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctor.FindAll(ctx, u.db, specialized)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	likes, err := u.likeRepo.FindByUser(ctx, u.db, viewerID)
	if err != nil {
		u.log.Warnf("Failed to find likes: %+v", err)
		return nil, err
	}
	favourites := make(map[uuid.UUID]*string, len(likes))
	for _, like := range likes {
		favourites[like.DoctorID] = like.Favourite
	}

	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *converter.DoctorToResponse(&doctors[i], favourites[doctors[i].ID])
	}

	return &dto.DoctorListResponse{
		Doctors: responses,
		Total:   len(responses),
	}, nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, viewerID, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctor.FindByID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	like, err := u.likeRepo.FindByUserAndDoctor(ctx, u.db, viewerID, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find like: %+v", err)
		return nil, err
	}

	var favourite *string
	if like != nil {
		favourite = like.Favourite
	}
	return converter.DoctorToResponse(doctor, favourite), nil
}
