package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gender values accepted for User.Gender
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOthers = "others"
)

var GenderChoices = []string{GenderMale, GenderFemale, GenderOthers}

// User represents the centralized identity table. Role specific data lives in
// the 1:1 extension tables (UserProfile, PatientInfo, Doctor, Instructor).
type User struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Username       string     `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email          string     `gorm:"type:varchar(254);index;not null" json:"email"`
	Password       string     `gorm:"type:text;not null" json:"-"`
	Name           *string    `gorm:"type:varchar(255)" json:"name"`
	FullName       *string    `gorm:"type:varchar(255)" json:"full_name"`
	FirstName      *string    `gorm:"type:varchar(255)" json:"first_name"`
	LastName       *string    `gorm:"type:varchar(255)" json:"last_name"`
	Gender         *string    `gorm:"type:varchar(255)" json:"gender"`
	PhoneNumber    *string    `gorm:"type:varchar(15)" json:"phone_number"`
	DOB            *time.Time `gorm:"column:dob" json:"dob"`
	Avatar         *string    `gorm:"type:varchar(1024)" json:"avatar"`
	ProfilePicture *string    `gorm:"type:varchar(1024)" json:"profile_picture"`
	Linkedin       *string    `gorm:"type:varchar(255)" json:"linkedin"`
	EmailVerified  bool       `gorm:"not null;default:false" json:"email_verified"`
	IsActive       bool       `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Profile     *UserProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
	PatientInfo *PatientInfo `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"patient_info,omitempty"`
	Doctor      *Doctor      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"doctor,omitempty"`
	Instructor  *Instructor  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"instructor,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// DisplayName returns the first non-empty of name, full name and username.
func (u *User) DisplayName() string {
	if u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}
	return u.Username
}
