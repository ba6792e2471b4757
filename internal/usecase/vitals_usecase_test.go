package usecase

import (
	"context"
	"testing"

	"healthcare-backend/internal/delivery/dto"
	"healthcare-backend/internal/domain/entity"
	"healthcare-backend/internal/repository"
	"healthcare-backend/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVitalsUsecase_RecordAndList(t *testing.T) {
	db := testutil.NewDB(t)
	uc := NewVitalsUsecase(db, testutil.NewLogger(), repository.NewPatientInfoRepository(), repository.NewVitalsRepository())
	ctx := context.Background()

	user := createUser(t, db, "jane")
	patient := &entity.PatientInfo{UserID: user.ID}
	require.NoError(t, db.Create(patient).Error)

	temperature := decimal.RequireFromString("36.60")
	recorded, err := uc.RecordVitals(ctx, user.ID, &dto.CreateVitalsRequest{
		HeartRate:   testutil.Ptr(72),
		Temperature: &temperature,
		Date:        testutil.Ptr("2024-03-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, patient.ID, *recorded.PatientID)
	assert.Equal(t, "2024-03-01", *recorded.Date)
	assert.False(t, recorded.Weight.Valid)

	_, err = uc.RecordVitals(ctx, user.ID, &dto.CreateVitalsRequest{Pulse: testutil.Ptr(80)})
	require.NoError(t, err)

	list, err := uc.GetMyVitals(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, 2, list.Total)

	var withTemperature *dto.VitalsResponse
	for i := range list.Vitals {
		if list.Vitals[i].Temperature.Valid {
			withTemperature = &list.Vitals[i]
		}
	}
	require.NotNil(t, withTemperature)
	assert.True(t, temperature.Equal(withTemperature.Temperature.Decimal))
	assert.Equal(t, 72, *withTemperature.HeartRate)
}

func TestVitalsUsecase_RequiresPatientInfo(t *testing.T) {
	db := testutil.NewDB(t)
	uc := NewVitalsUsecase(db, testutil.NewLogger(), repository.NewPatientInfoRepository(), repository.NewVitalsRepository())

	user := createUser(t, db, "jane")

	_, err := uc.RecordVitals(context.Background(), user.ID, &dto.CreateVitalsRequest{Pulse: testutil.Ptr(80)})
	assert.ErrorIs(t, err, ErrPatientInfoNotFound)

	_, err = uc.GetMyVitals(context.Background(), user.ID)
	assert.ErrorIs(t, err, ErrPatientInfoNotFound)
}
