package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FavouriteLike    = "1"
	FavouriteDislike = "0"
)

var FavouriteChoices = []string{FavouriteLike, FavouriteDislike}

// LikeDoctor records whether a user likes or dislikes a doctor.
// There is at most one row per (user, doctor) pair.
type LikeDoctor struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_like_doctor_user_doctor" json:"user_id"`
	DoctorID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_like_doctor_user_doctor" json:"doctor_id"`
	Favourite       *string    `gorm:"type:varchar(255)" json:"favourite"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	LastUpdatedDate time.Time  `gorm:"autoUpdateTime" json:"last_updated_date"`
	LastUpdatedByID *uuid.UUID `gorm:"column:last_updated_by;type:uuid" json:"last_updated_by"`

	// Relationships
	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Doctor *Doctor `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"-"`
}

func (LikeDoctor) TableName() string {
	return "like_doctors"
}

func (l *LikeDoctor) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
