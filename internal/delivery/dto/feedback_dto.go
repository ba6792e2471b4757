package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateFeedbackRequest struct {
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required"`
	Ratings *int   `json:"ratings" validate:"omitempty,gte=1,lte=5"`
}

type ReplyFeedbackRequest struct {
	ReplyMessage string `json:"reply_message" validate:"required"`
}

// Response DTOs

type FeedbackResponse struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Name         *string   `json:"name,omitempty"`
	Email        string    `json:"email,omitempty"`
	Subject      string    `json:"subject"`
	Message      string    `json:"message"`
	Replied      bool      `json:"replied"`
	ReplyMessage *string   `json:"reply_message"`
	Ratings      *int      `json:"ratings"`
	CreatedAt    time.Time `json:"created_at"`
}

type FeedbackListResponse struct {
	Feedbacks []FeedbackResponse `json:"feedbacks"`
	Total     int                `json:"total"`
}
