package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feedback is a message sent by a user to the platform staff.
type Feedback struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Subject         string     `gorm:"type:varchar(255);not null" json:"subject"`
	Message         string     `gorm:"type:text;not null" json:"message"`
	Replied         bool       `gorm:"not null;default:false" json:"replied"`
	ReplyMessage    *string    `gorm:"type:text" json:"reply_message"`
	Ratings         *int       `json:"ratings"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	LastUpdatedByID *uuid.UUID `gorm:"column:last_updated_by;type:uuid" json:"last_updated_by"`

	// Relationships
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
