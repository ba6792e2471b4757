package repository

import (
	"context"

	"healthcare-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LikeDoctorRepository interface {
	// Upsert inserts the like or, when the (user, doctor) pair already exists,
	// overwrites its favourite value.
	Upsert(ctx context.Context, db *gorm.DB, like *entity.LikeDoctor) error
	FindByUserAndDoctor(ctx context.Context, db *gorm.DB, userID, doctorID uuid.UUID) (*entity.LikeDoctor, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]entity.LikeDoctor, error)
}
