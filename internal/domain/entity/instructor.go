package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Instructor holds instructor specific attributes of a User.
type Instructor struct {
	ID              uuid.UUID  `gorm:"column:instructor_id;type:uuid;primaryKey" json:"instructor_id"`
	UserID          uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Age             *int       `json:"age"`
	Address         *string    `gorm:"type:text" json:"address"`
	AboutInstructor *string    `gorm:"type:text" json:"about_instructor"`
	Specialized     *string    `gorm:"type:text" json:"specialized"`
	Qualification   *string    `gorm:"type:varchar(255)" json:"qualification"`
	LastUpdatedDate time.Time  `gorm:"autoUpdateTime" json:"last_updated_date"`
	LastUpdatedByID *uuid.UUID `gorm:"column:last_updated_by;type:uuid" json:"last_updated_by"`
}

func (Instructor) TableName() string {
	return "instructors"
}

func (i *Instructor) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
