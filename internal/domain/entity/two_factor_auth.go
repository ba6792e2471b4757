package entity

import "github.com/google/uuid"

const TwoFactorMethodEmail = "email"

// TwoFactorAuth is the second factor enrolment created for every new account.
type TwoFactorAuth struct {
	ID     int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID *uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Email  *string    `gorm:"type:varchar(255)" json:"email"`
	Secret *string    `gorm:"type:varchar(16)" json:"-"`
	Method *string    `gorm:"type:varchar(20)" json:"method"`

	// Relationships
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (TwoFactorAuth) TableName() string {
	return "two_factor_auths"
}
