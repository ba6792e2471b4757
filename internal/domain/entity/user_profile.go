package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserType classifies a user. Stored on UserProfile.
type UserType string

const (
	UserTypePatient            UserType = "patient"
	UserTypeHealthcareProvider UserType = "healthcare_provider"
	UserTypeDoctor             UserType = "doctor"
	UserTypeInstructor         UserType = "instructor"
	UserTypeAdmin              UserType = "admin"
	UserTypeAccountant         UserType = "accountant"
	UserTypeSales              UserType = "sales"
	UserTypeOthers             UserType = "others"
)

var UserTypeChoices = []string{
	string(UserTypePatient),
	string(UserTypeHealthcareProvider),
	string(UserTypeDoctor),
	string(UserTypeInstructor),
	string(UserTypeAdmin),
	string(UserTypeAccountant),
	string(UserTypeSales),
	string(UserTypeOthers),
}

// UserProfile is the 1:1 classification record of a User.
type UserProfile struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	UserType UserType  `gorm:"type:varchar(20);not null;default:'patient';index" json:"user_type"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

func (p *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.UserType == "" {
		p.UserType = UserTypePatient
	}
	return nil
}
