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

func TestFeedbackUsecase_CreateAndReply(t *testing.T) {
	db := testutil.NewDB(t)
	log := testutil.NewLogger()
	uc := NewFeedbackUsecase(db, log, repository.NewFeedbackRepository(),
		service.NewAuditService(log, repository.NewAuditLogRepository()))
	ctx := context.Background()

	jane := createUser(t, db, "jane")
	john := createUser(t, db, "john")
	admin := createUser(t, db, "admin")

	created, err := uc.CreateFeedback(ctx, jane.ID, &dto.CreateFeedbackRequest{
		Subject: "Booking",
		Message: "The calendar is hard to read",
		Ratings: testutil.Ptr(3),
	})
	require.NoError(t, err)
	assert.False(t, created.Replied)

	_, err = uc.CreateFeedback(ctx, john.ID, &dto.CreateFeedbackRequest{Subject: "Hi", Message: "Great app"})
	require.NoError(t, err)

	mine, err := uc.GetMyFeedbacks(ctx, jane.ID)
	require.NoError(t, err)
	require.Equal(t, 1, mine.Total)
	assert.Equal(t, "Booking", mine.Feedbacks[0].Subject)

	all, err := uc.GetAllFeedbacks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)

	replied, err := uc.ReplyFeedback(ctx, admin.ID, created.ID, &dto.ReplyFeedbackRequest{ReplyMessage: "Thanks, fixed"})
	require.NoError(t, err)
	assert.True(t, replied.Replied)
	assert.Equal(t, "Thanks, fixed", *replied.ReplyMessage)

	var stored entity.Feedback
	require.NoError(t, db.First(&stored, "id = ?", created.ID).Error)
	assert.True(t, stored.Replied)
	assert.Equal(t, admin.ID, *stored.LastUpdatedByID)
	assert.EqualValues(t, 1, count(t, db, &entity.AuditLog{}))

	_, err = uc.ReplyFeedback(ctx, admin.ID, uuid.New(), &dto.ReplyFeedbackRequest{ReplyMessage: "?"})
	assert.ErrorIs(t, err, ErrFeedbackNotFound)
}
