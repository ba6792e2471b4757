package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateToDoRequest struct {
	Title string  `json:"title" validate:"required"`
	Notes *string `json:"notes"`
}

type UpdateToDoRequest struct {
	Title     *string `json:"title" validate:"omitempty,min=1"`
	Notes     *string `json:"notes"`
	Completed *bool   `json:"completed"`
}

type ToDoResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     *string   `json:"title"`
	Notes     *string   `json:"notes"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ToDoListResponse struct {
	Items []ToDoResponse `json:"items"`
	Total int            `json:"total"`
}
