package handler

import (
	"encoding/json"
	"net/http"

	"healthcare-backend/internal/delivery/dto"
	"healthcare-backend/internal/delivery/http/middleware"
	"healthcare-backend/internal/usecase"
	"healthcare-backend/pkg/response"
	"healthcare-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ToDoHandler struct {
	toDoUsecase usecase.ToDoUsecase
	validator   *validator.CustomValidator
}

func NewToDoHandler(toDoUsecase usecase.ToDoUsecase, validator *validator.CustomValidator) *ToDoHandler {
	return &ToDoHandler{
		toDoUsecase: toDoUsecase,
		validator:   validator,
	}
}

func (h *ToDoHandler) CreateToDo(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dto.CreateToDoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	todo, err := h.toDoUsecase.CreateToDo(r.Context(), userID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create todo")
		return
	}

	response.Success(w, http.StatusCreated, "Todo created successfully", todo)
}

func (h *ToDoHandler) GetMyToDos(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	todos, err := h.toDoUsecase.GetMyToDos(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get todos")
		return
	}

	response.Success(w, http.StatusOK, "Todos retrieved successfully", todos)
}

func (h *ToDoHandler) UpdateToDo(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	todoID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid todo ID")
		return
	}

	var req dto.UpdateToDoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	todo, err := h.toDoUsecase.UpdateToDo(r.Context(), userID, todoID, &req)
	if err != nil {
		switch err {
		case usecase.ErrToDoNotFound:
			response.NotFound(w, "Todo not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "")
		default:
			response.InternalServerError(w, "Failed to update todo")
		}
		return
	}

	response.Success(w, http.StatusOK, "Todo updated successfully", todo)
}

func (h *ToDoHandler) DeleteToDo(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	todoID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid todo ID")
		return
	}

	if err := h.toDoUsecase.DeleteToDo(r.Context(), userID, todoID); err != nil {
		switch err {
		case usecase.ErrToDoNotFound:
			response.NotFound(w, "Todo not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "")
		default:
			response.InternalServerError(w, "Failed to delete todo")
		}
		return
	}

	response.Success(w, http.StatusOK, "Todo deleted successfully", nil)
}
