package repository

import (
	"context"
	"errors"

	"healthcare-backend/internal/domain/entity"
	domainRepo "healthcare-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type toDoRepository struct{}

func NewToDoRepository() domainRepo.ToDoRepository {
	return &toDoRepository{}
}

func (r *toDoRepository) Create(ctx context.Context, db *gorm.DB, todo *entity.ToDoList) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(todo).Error
}

func (r *toDoRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.ToDoList, error) {
	var todo entity.ToDoList
	err := db.WithContext(ctx).Where("id = ?", id).First(&todo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &todo, nil
}

func (r *toDoRepository) FindByCreator(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]entity.ToDoList, error) {
	var todos []entity.ToDoList
	err := db.WithContext(ctx).Where("created_by = ?", userID).Order("created_at DESC").Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *toDoRepository) Update(ctx context.Context, db *gorm.DB, todo *entity.ToDoList) error {
	return db.WithContext(ctx).Omit(clause.Associations).Save(todo).Error
}

func (r *toDoRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.ToDoList{})
	return result.RowsAffected, result.Error
}
