package entity

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var AgeRangeChoices = []string{"18-29", "30-39", "40-49", "50-59", "60-69", "70 and above"}

var HealthTodayChoices = []string{"healthiest", "ok", "challenging"}

var BusyScheduleChoices = []string{"barely", "busy", "not_busy"}

var SupportNeededChoices = []string{
	"immune_health",
	"lose_weight",
	"reduce_stress",
	"optimize_diet_exercise",
	"sleep_better",
	"overall_wellness",
}

// PatientInfo holds patient specific attributes of a User.
type PatientInfo struct {
	ID                    uuid.UUID   `gorm:"column:patient_id;type:uuid;primaryKey" json:"patient_id"`
	UserID                uuid.UUID   `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Title                 *string     `gorm:"type:varchar(255)" json:"title"`
	Age                   *int        `json:"age"`
	Address               *string     `gorm:"type:text" json:"address"`
	AgeRange              *string     `gorm:"type:varchar(255)" json:"age_range"`
	HealthToday           *string     `gorm:"type:varchar(255)" json:"health_today"`
	Allergies             *bool       `gorm:"default:false" json:"allergies"`
	Medications           *bool       `gorm:"default:false" json:"medications"`
	FamilyHealthHistory   *bool       `gorm:"default:false" json:"family_health_history"`
	Occupation            *string     `gorm:"type:varchar(255)" json:"occupation"`
	PhysicalActivity      *string     `gorm:"type:varchar(255)" json:"physical_activity"`
	Habits                *string     `gorm:"type:varchar(255)" json:"habits"`
	BusySchedule          *string     `gorm:"type:varchar(255)" json:"busy_schedule"`
	SupportNeeded         MultiChoice `gorm:"type:varchar(255)" json:"support_needed"`
	Height                *float64    `json:"height"`
	Weight                *float64    `json:"weight"`
	BloodGroup            *string     `gorm:"type:varchar(255)" json:"blood_group"`
	Disability            *bool       `gorm:"default:false" json:"disability"`
	Genotype              *string     `gorm:"type:varchar(255)" json:"genotype"`
	EmergencyContactName  *string     `gorm:"type:varchar(255)" json:"emergency_contact_name"`
	EmergencyContact      *string     `gorm:"type:varchar(255)" json:"emergency_contact"`
	EmergencyContactEmail *string     `gorm:"type:varchar(254)" json:"emergency_contact_email"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (PatientInfo) TableName() string {
	return "patient_infos"
}

// NewPatientInfo returns a record for userID with the column defaults applied,
// so boolean flags start as false rather than null.
func NewPatientInfo(userID uuid.UUID) *PatientInfo {
	no := false
	allergies, medications, history, disability := no, no, no, no
	return &PatientInfo{
		UserID:              userID,
		Allergies:           &allergies,
		Medications:         &medications,
		FamilyHealthHistory: &history,
		Disability:          &disability,
	}
}

func (p *PatientInfo) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// MultiChoice stores a set of choice values as a comma separated column.
// A nil MultiChoice is stored as NULL.
type MultiChoice []string

func (m MultiChoice) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return strings.Join(m, ","), nil
}

func (m *MultiChoice) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	var s string
	switch v := value.(type) {
	case []byte:
		s = string(v)
	case string:
		s = v
	default:
		return fmt.Errorf("failed to scan MultiChoice value: %v", value)
	}
	if s == "" {
		*m = MultiChoice{}
		return nil
	}
	*m = strings.Split(s, ",")
	return nil
}
