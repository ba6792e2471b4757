package usecase

import (
	"context"
	"errors"

	"healthcare-backend/internal/converter"
	"healthcare-backend/internal/delivery/dto"
	"healthcare-backend/internal/domain/entity"
	"healthcare-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrToDoNotFound = errors.New("todo not found")

type ToDoUsecase interface {
	CreateToDo(ctx context.Context, userID uuid.UUID, req *dto.CreateToDoRequest) (*dto.ToDoResponse, error)
	GetMyToDos(ctx context.Context, userID uuid.UUID) (*dto.ToDoListResponse, error)
	UpdateToDo(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateToDoRequest) (*dto.ToDoResponse, error)
	DeleteToDo(ctx context.Context, userID, id uuid.UUID) error
}

type toDoUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	toDoRepo repository.ToDoRepository
}

func NewToDoUsecase(db *gorm.DB, log *logrus.Logger, toDoRepo repository.ToDoRepository) ToDoUsecase {
	return &toDoUsecase{
		db:       db,
		log:      log,
		toDoRepo: toDoRepo,
	}
}

func (u *toDoUsecase) CreateToDo(ctx context.Context, userID uuid.UUID, req *dto.CreateToDoRequest) (*dto.ToDoResponse, error) {
	title := req.Title
	todo := &entity.ToDoList{
		Title:       &title,
		Notes:       req.Notes,
		CreatedByID: &userID,
		UpdatedByID: &userID,
	}

	if err := u.toDoRepo.Create(ctx, u.db, todo); err != nil {
		u.log.Warnf("Failed to create todo: %+v", err)
		return nil, err
	}

	return converter.ToDoToResponse(todo), nil
}

func (u *toDoUsecase) GetMyToDos(ctx context.Context, userID uuid.UUID) (*dto.ToDoListResponse, error) {
	todos, err := u.toDoRepo.FindByCreator(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find todos: %+v", err)
		return nil, err
	}

	return &dto.ToDoListResponse{
		Items: converter.ToDosToResponses(todos),
		Total: len(todos),
	}, nil
}

func (u *toDoUsecase) UpdateToDo(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateToDoRequest) (*dto.ToDoResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	todo, err := u.findOwned(ctx, tx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		todo.Title = req.Title
	}
	if req.Notes != nil {
		todo.Notes = req.Notes
	}
	if req.Completed != nil {
		todo.Completed = *req.Completed
	}
	todo.UpdatedByID = &userID

	if err := u.toDoRepo.Update(ctx, tx, todo); err != nil {
		u.log.Warnf("Failed to update todo: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ToDoToResponse(todo), nil
}

func (u *toDoUsecase) DeleteToDo(ctx context.Context, userID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := u.findOwned(ctx, tx, userID, id); err != nil {
		return err
	}

	rows, err := u.toDoRepo.Delete(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete todo: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrToDoNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}

func (u *toDoUsecase) findOwned(ctx context.Context, db *gorm.DB, userID, id uuid.UUID) (*entity.ToDoList, error) {
	todo, err := u.toDoRepo.FindByID(ctx, db, id)
	if err != nil {
		u.log.Warnf("Failed to find todo: %+v", err)
		return nil, err
	}
	if todo == nil {
		return nil, ErrToDoNotFound
	}
	if todo.CreatedByID == nil || *todo.CreatedByID != userID {
		return nil, ErrForbidden
	}
	return todo, nil
}
