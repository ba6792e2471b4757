package usecase

import (
	"context"
	"testing"

	"healthcare-backend/internal/domain/entity"
	"healthcare-backend/internal/repository"
	"healthcare-backend/internal/service"
	"healthcare-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLogUsecase_ListAndGet(t *testing.T) {
	db := testutil.NewDB(t)
	log := testutil.NewLogger()
	repo := repository.NewAuditLogRepository()
	audit := service.NewAuditService(log, repo)
	uc := NewAuditLogUsecase(db, log, repo)
	ctx := context.Background()

	user := createUser(t, db, "jane")
	require.NoError(t, audit.LogCreate(ctx, db, &user.ID, entity.AuditActionAppointmentCreate, "appointment", "a1", map[string]string{"title": "a"}))
	require.NoError(t, audit.LogDelete(ctx, db, &user.ID, entity.AuditActionAppointmentDelete, "appointment", "a1", nil))
	require.NoError(t, audit.Log(ctx, db, nil, entity.AuditActionUserLogin, nil))

	page, err := uc.GetAllAuditLogs(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Len(t, page.Logs, 2)

	rest, err := uc.GetAllAuditLogs(ctx, 2, 2)
	require.NoError(t, err)
	assert.Len(t, rest.Logs, 1)

	all, err := uc.GetAllAuditLogs(ctx, 0, -5)
	require.NoError(t, err)
	require.Len(t, all.Logs, 3)

	var created int64
	for _, l := range all.Logs {
		if l.Action == entity.AuditActionAppointmentCreate {
			created = l.ID
		}
	}
	require.NotZero(t, created)

	got, err := uc.GetAuditLog(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "jane", got.Username)
	assert.Equal(t, "appointment", got.Metadata["entity"])
	assert.Equal(t, "a1", got.Metadata["entity_id"])
	assert.Equal(t, map[string]interface{}{"title": "a"}, got.Metadata["new_value"])

	_, err = uc.GetAuditLog(ctx, 9999)
	assert.ErrorIs(t, err, ErrAuditLogNotFound)
}
