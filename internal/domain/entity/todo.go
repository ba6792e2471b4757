package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ToDoList struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title       *string    `gorm:"type:text" json:"title"`
	Notes       *string    `gorm:"type:text" json:"notes"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	CreatedByID *uuid.UUID `gorm:"column:created_by;type:uuid;index" json:"created_by"`
	UpdatedByID *uuid.UUID `gorm:"column:updated_by;type:uuid" json:"updated_by"`

	// Relationships
	CreatedBy *User `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ToDoList) TableName() string {
	return "todo_lists"
}

func (t *ToDoList) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
