package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment is a consultation booked by a user with a doctor.
// Status is a free form string set by clients.
type Appointment struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	DoctorID        *uuid.UUID `gorm:"type:uuid;index" json:"doctor_id"`
	UserID          *uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Date            *time.Time `gorm:"type:date" json:"date"`
	ConsultTime     *string    `gorm:"type:varchar(8)" json:"consult_time"`
	DoctorQueries   *string    `gorm:"type:text" json:"doctor_queries"`
	HealthIssue     *string    `gorm:"type:text" json:"health_issue"`
	Feedback        *string    `gorm:"type:text" json:"feedback"`
	Ratings         *int       `json:"ratings"`
	Status          *string    `gorm:"type:varchar(255);index" json:"status"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	LastUpdatedDate time.Time  `gorm:"autoUpdateTime" json:"last_updated_date"`
	LastUpdatedByID *uuid.UUID `gorm:"column:last_updated_by;type:uuid" json:"last_updated_by"`

	// Relationships
	Doctor *Doctor `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"doctor,omitempty"`
	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
