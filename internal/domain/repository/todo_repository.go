package repository

import (
	"context"

	"healthcare-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ToDoRepository interface {
	Create(ctx context.Context, db *gorm.DB, todo *entity.ToDoList) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.ToDoList, error)
	FindByCreator(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]entity.ToDoList, error)
	Update(ctx context.Context, db *gorm.DB, todo *entity.ToDoList) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
}
