package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Vitals is one set of measurements taken for a patient.
type Vitals struct {
	ID              uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          *uuid.UUID          `gorm:"type:uuid;index" json:"user_id"`
	PatientID       *uuid.UUID          `gorm:"type:uuid;index" json:"patient_id"`
	HeartRate       *int                `json:"heart_rate"`
	BloodStatus     *string             `gorm:"type:varchar(100)" json:"blood_status"`
	BloodCount      *int                `json:"blood_count"`
	GlucoseLevel    decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"glucose_level"`
	Weight          decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"weight"`
	Temperature     decimal.NullDecimal `gorm:"type:decimal(5,2)" json:"temperature"`
	Pulse           *int                `json:"pulse"`
	Date            *time.Time          `gorm:"type:date" json:"date"`
	CreatedAt       time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
	LastUpdatedByID *uuid.UUID          `gorm:"column:last_updated_by;type:uuid" json:"last_updated_by"`
	LastUpdatedAt   *time.Time          `json:"last_updated_at"`

	// Relationships
	User    *User        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Patient *PatientInfo `gorm:"foreignKey:PatientID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Vitals) TableName() string {
	return "vitals"
}

func (v *Vitals) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.Date == nil {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		v.Date = &today
	}
	return nil
}
