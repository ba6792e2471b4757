package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs
//
// Pointer fields are optional: nil means "not sent" and leaves the stored value untouched.

type ProfilePayload struct {
	UserType *string `json:"user_type" validate:"omitempty,user_type"`
}

type PatientInfoPayload struct {
	Title                 *string  `json:"title" validate:"omitempty,max=255"`
	Age                   *int     `json:"age" validate:"omitempty,gte=0,lte=150"`
	Address               *string  `json:"address"`
	AgeRange              *string  `json:"age_range" validate:"omitempty,age_range"`
	HealthToday           *string  `json:"health_today" validate:"omitempty,health_today"`
	Allergies             *bool    `json:"allergies"`
	Medications           *bool    `json:"medications"`
	FamilyHealthHistory   *bool    `json:"family_health_history"`
	Occupation            *string  `json:"occupation" validate:"omitempty,max=255"`
	PhysicalActivity      *string  `json:"physical_activity" validate:"omitempty,max=255"`
	Habits                *string  `json:"habits" validate:"omitempty,max=255"`
	BusySchedule          *string  `json:"busy_schedule" validate:"omitempty,busy_schedule"`
	SupportNeeded         []string `json:"support_needed" validate:"omitempty,dive,support_needed"`
	Height                *float64 `json:"height" validate:"omitempty,gte=0"`
	Weight                *float64 `json:"weight" validate:"omitempty,gte=0"`
	BloodGroup            *string  `json:"blood_group" validate:"omitempty,max=255"`
	Disability            *bool    `json:"disability"`
	Genotype              *string  `json:"genotype" validate:"omitempty,max=255"`
	EmergencyContactName  *string  `json:"emergency_contact_name" validate:"omitempty,max=255"`
	EmergencyContact      *string  `json:"emergency_contact" validate:"omitempty,max=255"`
	EmergencyContactEmail *string  `json:"emergency_contact_email" validate:"omitempty,email"`
}

type DoctorPayload struct {
	Age           *int    `json:"age" validate:"omitempty,gte=0,lte=150"`
	Address       *string `json:"address"`
	AboutDoctor   *string `json:"about_doctor"`
	Specialized   *string `json:"specialized" validate:"omitempty,specialized"`
	Qualification *string `json:"qualification" validate:"omitempty,max=255"`
	AvailableTime *string `json:"available_time" validate:"omitempty,datetime=15:04"`
	WorkingDays   *string `json:"working_days" validate:"omitempty,max=255"`
	WorkingHours  *string `json:"working_hours" validate:"omitempty,max=255"`
	Experience    *int    `json:"experience" validate:"omitempty,gte=0"`
}

type InstructorPayload struct {
	Age             *int    `json:"age" validate:"omitempty,gte=0,lte=150"`
	Address         *string `json:"address"`
	AboutInstructor *string `json:"about_instructor"`
	Specialized     *string `json:"specialized"`
	Qualification   *string `json:"qualification" validate:"omitempty,max=255"`
}

// UserFields are the scalar user attributes shared by signup and edit.
type UserFields struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	FullName    *string `json:"full_name" validate:"omitempty,max=255"`
	FirstName   *string `json:"first_name" validate:"omitempty,max=255"`
	LastName    *string `json:"last_name" validate:"omitempty,max=255"`
	Gender      *string `json:"gender" validate:"omitempty,gender"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=15"`
	DOB         *string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Linkedin    *string `json:"linkedin" validate:"omitempty,max=255"`
}

// Extensions carries the optional nested payloads. At most one of patient_info,
// doctor_info and instructor_info may be sent per request.
type Extensions struct {
	Profile        *ProfilePayload     `json:"profile"`
	PatientInfo    *PatientInfoPayload `json:"patient_info"`
	DoctorInfo     *DoctorPayload      `json:"doctor_info"`
	InstructorInfo *InstructorPayload  `json:"instructor_info"`
}

type SignupRequest struct {
	UserFields
	Extensions
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type EditUserRequest struct {
	UserFields
	Extensions
	Email *string `json:"email" validate:"omitempty,email"`
}

// Response DTOs

type ProfileResponse struct {
	ID       uuid.UUID `json:"id"`
	UserType string    `json:"user_type"`
}

type PatientInfoResponse struct {
	PatientID             uuid.UUID `json:"patient_id"`
	Title                 *string   `json:"title"`
	Age                   *int      `json:"age"`
	Address               *string   `json:"address"`
	AgeRange              *string   `json:"age_range"`
	HealthToday           *string   `json:"health_today"`
	Allergies             *bool     `json:"allergies"`
	Medications           *bool     `json:"medications"`
	FamilyHealthHistory   *bool     `json:"family_health_history"`
	Occupation            *string   `json:"occupation"`
	PhysicalActivity      *string   `json:"physical_activity"`
	Habits                *string   `json:"habits"`
	BusySchedule          *string   `json:"busy_schedule"`
	SupportNeeded         []string  `json:"support_needed"`
	Height                *float64  `json:"height"`
	Weight                *float64  `json:"weight"`
	BloodGroup            *string   `json:"blood_group"`
	Disability            *bool     `json:"disability"`
	Genotype              *string   `json:"genotype"`
	EmergencyContactName  *string   `json:"emergency_contact_name"`
	EmergencyContact      *string   `json:"emergency_contact"`
	EmergencyContactEmail *string   `json:"emergency_contact_email"`
}

type InstructorResponse struct {
	InstructorID    uuid.UUID `json:"instructor_id"`
	Age             *int      `json:"age"`
	Address         *string   `json:"address"`
	AboutInstructor *string   `json:"about_instructor"`
	Specialized     *string   `json:"specialized"`
	Qualification   *string   `json:"qualification"`
	LastUpdatedDate time.Time `json:"last_updated_date"`
}

type UserResponse struct {
	ID             uuid.UUID            `json:"id"`
	Username       string               `json:"username"`
	Email          string               `json:"email"`
	Name           *string              `json:"name"`
	FullName       *string              `json:"full_name"`
	FirstName      *string              `json:"first_name"`
	LastName       *string              `json:"last_name"`
	Gender         *string              `json:"gender"`
	PhoneNumber    *string              `json:"phone_number"`
	DOB            *string              `json:"dob"`
	Avatar         *string              `json:"avatar"`
	ProfilePicture *string              `json:"profile_picture"`
	Linkedin       *string              `json:"linkedin"`
	EmailVerified  bool                 `json:"email_verified"`
	IsActive       bool                 `json:"is_active"`
	Profile        *ProfileResponse     `json:"profile,omitempty"`
	PatientInfo    *PatientInfoResponse `json:"patient_info,omitempty"`
	DoctorInfo     *DoctorResponse      `json:"doctor_info,omitempty"`
	InstructorInfo *InstructorResponse  `json:"instructor_info,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// UserDetailResponse is the public card of a user with signed media links.
type UserDetailResponse struct {
	ID                      uuid.UUID `json:"id"`
	Name                    *string   `json:"name"`
	FullName                *string   `json:"full_name"`
	Gender                  *string   `json:"gender"`
	Email                   string    `json:"email"`
	PhoneNumber             *string   `json:"phone_number"`
	Avatar                  *string   `json:"avatar"`
	AvatarSignedURL         *string   `json:"avatar_signed_url"`
	ProfilePicture          *string   `json:"profile_picture"`
	ProfilePictureSignedURL *string   `json:"profile_picture_signed_url"`
}

type ProfileCompletionResponse struct {
	UserID                   uuid.UUID `json:"user_id"`
	UserName                 *string   `json:"user_name"`
	UserType                 string    `json:"user_type"`
	PatientProfileCompletion int       `json:"patient_profile_completion"`
	DoctorProfileCompletion  int       `json:"doctor_profile_completion"`
}

type ProfileCompletionListResponse struct {
	Profiles []ProfileCompletionResponse `json:"profiles"`
	Total    int                         `json:"total"`
}
