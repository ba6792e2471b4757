package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LikeDoctorRequest struct {
	DoctorID  uuid.UUID `json:"doctor_id" validate:"required"`
	Favourite string    `json:"favourite" validate:"required,favourite"`
}

// Response DTOs

type DoctorResponse struct {
	DoctorID        uuid.UUID `json:"doctor_id"`
	UserID          uuid.UUID `json:"user_id"`
	Name            *string   `json:"name,omitempty"`
	Email           string    `json:"email,omitempty"`
	Age             *int      `json:"age"`
	Address         *string   `json:"address"`
	AboutDoctor     *string   `json:"about_doctor"`
	Specialized     *string   `json:"specialized"`
	Qualification   *string   `json:"qualification"`
	AvailableTime   *string   `json:"available_time"`
	WorkingDays     *string   `json:"working_days"`
	WorkingHours    *string   `json:"working_hours"`
	Experience      *int      `json:"experience"`
	Favourite       *string   `json:"favourite,omitempty"`
	LastUpdatedDate time.Time `json:"last_updated_date"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type LikeDoctorResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	DoctorID        uuid.UUID `json:"doctor_id"`
	Favourite       *string   `json:"favourite"`
	LastUpdatedDate time.Time `json:"last_updated_date"`
}
