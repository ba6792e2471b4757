package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID      uuid.UUID `json:"doctor_id" validate:"required"`
	Date          string    `json:"date" validate:"required,datetime=2006-01-02"`
	ConsultTime   *string   `json:"consult_time" validate:"omitempty,datetime=15:04"`
	DoctorQueries *string   `json:"doctor_queries"`
	HealthIssue   *string   `json:"health_issue"`
	Status        *string   `json:"status" validate:"omitempty,max=255"`
}

type UpdateAppointmentRequest struct {
	Date          *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	ConsultTime   *string `json:"consult_time" validate:"omitempty,datetime=15:04"`
	DoctorQueries *string `json:"doctor_queries"`
	HealthIssue   *string `json:"health_issue"`
	Feedback      *string `json:"feedback"`
	Ratings       *int    `json:"ratings" validate:"omitempty,gte=1,lte=5"`
	Status        *string `json:"status" validate:"omitempty,max=255"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID  `json:"id"`
	DoctorID        *uuid.UUID `json:"doctor_id"`
	UserID          *uuid.UUID `json:"user_id"`
	DoctorName      *string    `json:"doctor_name"`
	Specialization  *string    `json:"specialization"`
	Date            *string    `json:"date"`
	ConsultTime     *string    `json:"consult_time"`
	DoctorQueries   *string    `json:"doctor_queries"`
	HealthIssue     *string    `json:"health_issue"`
	Feedback        *string    `json:"feedback"`
	Ratings         *int       `json:"ratings"`
	Status          *string    `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	LastUpdatedDate time.Time  `json:"last_updated_date"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
