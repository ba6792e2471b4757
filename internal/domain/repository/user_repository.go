package repository

import (
	"context"

	"healthcare-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *entity.User) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByIDWithExtensions(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error)
	// EmailExists reports whether another user already uses email (case insensitive).
	// excludeID, when set, is ignored in the lookup.
	EmailExists(ctx context.Context, db *gorm.DB, email string, excludeID *uuid.UUID) (bool, error)
	UsernameExists(ctx context.Context, db *gorm.DB, username string) (bool, error)
	Update(ctx context.Context, db *gorm.DB, user *entity.User) error
	UpdateColumns(ctx context.Context, db *gorm.DB, id uuid.UUID, columns map[string]interface{}) error
}
