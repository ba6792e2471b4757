package usecase

import (
	"context"

	"healthcare-backend/internal/delivery/dto"
	"healthcare-backend/internal/domain/entity"
	"healthcare-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ProfileCompletionUsecase interface {
	GetForUser(ctx context.Context, userID uuid.UUID) (*dto.ProfileCompletionResponse, error)
	ListByUserType(ctx context.Context, userType entity.UserType) (*dto.ProfileCompletionListResponse, error)
}

type profileCompletionUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	userRepo        repository.UserRepository
	profileRepo     repository.UserProfileRepository
	patientInfoRepo repository.PatientInfoRepository
	doctorRepo      repository.DoctorRepository
}

func NewProfileCompletionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	profileRepo repository.UserProfileRepository,
	patientInfoRepo repository.PatientInfoRepository,
	doctorRepo repository.DoctorRepository,
) ProfileCompletionUsecase {
	return &profileCompletionUsecase{
		db:              db,
		log:             log,
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		patientInfoRepo: patientInfoRepo,
		doctorRepo:      doctorRepo,
	}
}

func (u *profileCompletionUsecase) GetForUser(ctx context.Context, userID uuid.UUID) (*dto.ProfileCompletionResponse, error) {
	user, err := u.userRepo.FindByID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	userType := entity.UserTypePatient
	profile, err := u.profileRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user profile: %+v", err)
		return nil, err
	}
	if profile != nil {
		userType = profile.UserType
	}

	return u.score(ctx, user, userType)
}

func (u *profileCompletionUsecase) ListByUserType(ctx context.Context, userType entity.UserType) (*dto.ProfileCompletionListResponse, error) {
	profiles, err := u.profileRepo.FindAllByUserType(ctx, u.db, userType)
	if err != nil {
		u.log.Warnf("Failed to find profiles by user type: %+v", err)
		return nil, err
	}

	result := make([]dto.ProfileCompletionResponse, 0, len(profiles))
	for i := range profiles {
		if profiles[i].User == nil {
			continue
		}
		item, err := u.score(ctx, profiles[i].User, profiles[i].UserType)
		if err != nil {
			return nil, err
		}
		result = append(result, *item)
	}

	return &dto.ProfileCompletionListResponse{
		Profiles: result,
		Total:    len(result),
	}, nil
}

func (u *profileCompletionUsecase) score(ctx context.Context, user *entity.User, userType entity.UserType) (*dto.ProfileCompletionResponse, error) {
	patient, err := u.patientInfoRepo.FindByUserID(ctx, u.db, user.ID)
	if err != nil {
		u.log.Warnf("Failed to find patient info: %+v", err)
		return nil, err
	}
	doctor, err := u.doctorRepo.FindByUserID(ctx, u.db, user.ID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}

	return &dto.ProfileCompletionResponse{
		UserID:                   user.ID,
		UserName:                 user.Name,
		UserType:                 string(userType),
		PatientProfileCompletion: PatientCompletion(user, patient),
		DoctorProfileCompletion:  DoctorCompletion(user, doctor),
	}, nil
}
