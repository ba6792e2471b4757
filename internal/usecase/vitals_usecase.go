package usecase

import (
	"context"
	"errors"

	"healthcare-backend/internal/converter"
	"healthcare-backend/internal/delivery/dto"
	"healthcare-backend/internal/domain/entity"
	"healthcare-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPatientInfoNotFound = errors.New("patient info not found")

type VitalsUsecase interface {
	RecordVitals(ctx context.Context, userID uuid.UUID, req *dto.CreateVitalsRequest) (*dto.VitalsResponse, error)
	GetMyVitals(ctx context.Context, userID uuid.UUID) (*dto.VitalsListResponse, error)
}

type vitalsUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientInfoRepo repository.PatientInfoRepository
	vitalsRepo      repository.VitalsRepository
}

func NewVitalsUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientInfoRepo repository.PatientInfoRepository,
	vitalsRepo repository.VitalsRepository,
) VitalsUsecase {
	return &vitalsUsecase{
		db:              db,
		log:             log,
		patientInfoRepo: patientInfoRepo,
		vitalsRepo:      vitalsRepo,
	}
}

func (u *vitalsUsecase) RecordVitals(ctx context.Context, userID uuid.UUID, req *dto.CreateVitalsRequest) (*dto.VitalsResponse, error) {
	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}

	patient, err := u.patientInfoRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient info: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientInfoNotFound
	}

	vitals := &entity.Vitals{
		UserID:          &userID,
		PatientID:       &patient.ID,
		HeartRate:       req.HeartRate,
		BloodStatus:     req.BloodStatus,
		BloodCount:      req.BloodCount,
		GlucoseLevel:    nullDecimal(req.GlucoseLevel),
		Weight:          nullDecimal(req.Weight),
		Temperature:     nullDecimal(req.Temperature),
		Pulse:           req.Pulse,
		Date:            date,
		LastUpdatedByID: &userID,
	}

	if err := u.vitalsRepo.Create(ctx, u.db, vitals); err != nil {
		u.log.Warnf("Failed to create vitals: %+v", err)
		return nil, err
	}

	return converter.VitalsToResponse(vitals), nil
}

func (u *vitalsUsecase) GetMyVitals(ctx context.Context, userID uuid.UUID) (*dto.VitalsListResponse, error) {
	patient, err := u.patientInfoRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient info: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientInfoNotFound
	}

	vitals, err := u.vitalsRepo.FindByPatientID(ctx, u.db, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to find vitals: %+v", err)
		return nil, err
	}

	return &dto.VitalsListResponse{
		Vitals: converter.VitalsListToResponses(vitals),
		Total:  len(vitals),
	}, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}
