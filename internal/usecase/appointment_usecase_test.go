package usecase

import (
	"context"
	"testing"

	"healthcare-backend/internal/delivery/dto"
	"healthcare-backend/internal/domain/entity"
	"healthcare-backend/internal/repository"
	"healthcare-backend/internal/service"
	"healthcare-backend/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointment_Lifecycle(t *testing.T) {
	db := testutil.NewDB(t)
	log := testutil.NewLogger()
	uc := NewAppointmentUsecase(db, log, repository.NewAppointmentRepository(), repository.NewDoctorRepository(),
		service.NewAuditService(log, repository.NewAuditLogRepository()))
	ctx := context.Background()

	patient := createUser(t, db, "patient")
	stranger := createUser(t, db, "stranger")
	doctorUser, doctor := createDoctor(t, db, "drwho", entity.SpecializedObGyn)

	created, err := uc.CreateAppointment(ctx, patient.ID, &dto.CreateAppointmentRequest{
		DoctorID:    doctor.ID,
		Date:        "2026-11-02",
		ConsultTime: testutil.Ptr("09:30"),
		HealthIssue: testutil.Ptr("headache"),
		Status:      testutil.Ptr("pending"),
	})
	require.NoError(t, err)
	assert.Equal(t, "drwho", *created.DoctorName)
	assert.Equal(t, entity.SpecializedObGyn, *created.Specialization)
	assert.Equal(t, "2026-11-02", *created.Date)

	mine, err := uc.GetMyAppointments(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, mine.Total)

	theirs, err := uc.GetDoctorAppointments(ctx, doctorUser.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, theirs.Total)

	_, err = uc.GetDoctorAppointments(ctx, patient.ID)
	assert.ErrorIs(t, err, ErrNotADoctor)

	_, err = uc.GetAppointment(ctx, stranger.ID, created.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := uc.UpdateAppointment(ctx, doctorUser.ID, created.ID, &dto.UpdateAppointmentRequest{
		Status:  testutil.Ptr("confirmed"),
		Ratings: testutil.Ptr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", *updated.Status)
	assert.Equal(t, "headache", *updated.HealthIssue)
	assert.Equal(t, 5, *updated.Ratings)

	assert.ErrorIs(t, uc.DeleteAppointment(ctx, stranger.ID, created.ID), ErrForbidden)
	require.NoError(t, uc.DeleteAppointment(ctx, patient.ID, created.ID))

	_, err = uc.GetAppointment(ctx, patient.ID, created.ID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	// create, update, delete
	assert.EqualValues(t, 3, count(t, db, &entity.AuditLog{}))
}

func TestAppointment_UnknownDoctor(t *testing.T) {
	db := testutil.NewDB(t)
	log := testutil.NewLogger()
	uc := NewAppointmentUsecase(db, log, repository.NewAppointmentRepository(), repository.NewDoctorRepository(),
		service.NewAuditService(log, repository.NewAuditLogRepository()))

	patient := createUser(t, db, "patient")
	_, err := uc.CreateAppointment(context.Background(), patient.ID, &dto.CreateAppointmentRequest{
		DoctorID: uuid.New(),
		Date:     "2026-11-02",
	})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
	assert.Zero(t, count(t, db, &entity.Appointment{}))
}
