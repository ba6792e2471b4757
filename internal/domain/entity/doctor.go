package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SpecializedGeneralPhysician = "general_physician"
	SpecializedMentalHealth     = "mental_health"
	SpecializedPractitioner     = "practitioner"
	SpecializedObGyn            = "ob_gyn"
	SpecializedPT               = "pt"
)

var SpecializedChoices = []string{
	SpecializedGeneralPhysician,
	SpecializedMentalHealth,
	SpecializedPractitioner,
	SpecializedObGyn,
	SpecializedPT,
}

// Doctor holds doctor specific attributes of a User.
type Doctor struct {
	ID              uuid.UUID  `gorm:"column:doctor_id;type:uuid;primaryKey" json:"doctor_id"`
	UserID          uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Age             *int       `json:"age"`
	Address         *string    `gorm:"type:text" json:"address"`
	AboutDoctor     *string    `gorm:"type:text" json:"about_doctor"`
	Specialized     *string    `gorm:"type:varchar(255);index" json:"specialized"`
	Qualification   *string    `gorm:"type:varchar(255)" json:"qualification"`
	AvailableTime   *string    `gorm:"type:varchar(8)" json:"available_time"`
	WorkingDays     *string    `gorm:"type:varchar(255)" json:"working_days"`
	WorkingHours    *string    `gorm:"type:varchar(255)" json:"working_hours"`
	Experience      *int       `json:"experience"`
	LastUpdatedDate time.Time  `gorm:"autoUpdateTime" json:"last_updated_date"`
	LastUpdatedByID *uuid.UUID `gorm:"column:last_updated_by;type:uuid" json:"last_updated_by"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

func (d *Doctor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
