package converter

import (
	"healthcare-backend/internal/delivery/dto"
	"healthcare-backend/internal/domain/entity"
)

func ToDoToResponse(todo *entity.ToDoList) *dto.ToDoResponse {
	if todo == nil {
		return nil
	}

	return &dto.ToDoResponse{
		ID:        todo.ID,
		Title:     todo.Title,
		Notes:     todo.Notes,
		Completed: todo.Completed,
		CreatedAt: todo.CreatedAt,
		UpdatedAt: todo.UpdatedAt,
	}
}

func ToDosToResponses(todos []entity.ToDoList) []dto.ToDoResponse {
	responses := make([]dto.ToDoResponse, len(todos))
	for i := range todos {
		responses[i] = *ToDoToResponse(&todos[i])
	}
	return responses
}
