package usecase

import (
	"context"
	"testing"

	"healthcare-backend/internal/delivery/dto"
	"healthcare-backend/internal/repository"
	"healthcare-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDo_OwnerOnly(t *testing.T) {
	db := testutil.NewDB(t)
	uc := NewToDoUsecase(db, testutil.NewLogger(), repository.NewToDoRepository())
	ctx := context.Background()

	owner := createUser(t, db, "owner")
	other := createUser(t, db, "other")

	todo, err := uc.CreateToDo(ctx, owner.ID, &dto.CreateToDoRequest{Title: "Drink water"})
	require.NoError(t, err)
	assert.False(t, todo.Completed)

	_, err = uc.UpdateToDo(ctx, other.ID, todo.ID, &dto.UpdateToDoRequest{Completed: testutil.Ptr(true)})
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := uc.UpdateToDo(ctx, owner.ID, todo.ID, &dto.UpdateToDoRequest{Completed: testutil.Ptr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "Drink water", *updated.Title)

	list, err := uc.GetMyToDos(ctx, other.ID)
	require.NoError(t, err)
	assert.Zero(t, list.Total)

	assert.ErrorIs(t, uc.DeleteToDo(ctx, other.ID, todo.ID), ErrForbidden)
	require.NoError(t, uc.DeleteToDo(ctx, owner.ID, todo.ID))
	assert.ErrorIs(t, uc.DeleteToDo(ctx, owner.ID, todo.ID), ErrToDoNotFound)
}
