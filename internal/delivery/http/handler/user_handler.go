package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"healthcare-backend/internal/delivery/dto"
	"healthcare-backend/internal/delivery/http/middleware"
	"healthcare-backend/internal/domain/entity"
	"healthcare-backend/internal/usecase"
	"healthcare-backend/pkg/response"
	"healthcare-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const maxUploadSize = 10 << 20

type UserHandler struct {
	accountUsecase    usecase.AccountUsecase
	completionUsecase usecase.ProfileCompletionUsecase
	validator         *validator.CustomValidator
}

func NewUserHandler(accountUsecase usecase.AccountUsecase, completionUsecase usecase.ProfileCompletionUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		accountUsecase:    accountUsecase,
		completionUsecase: completionUsecase,
		validator:         validator,
	}
}

// EditMe applies a partial update to the caller and any nested extension payload.
func (h *UserHandler) EditMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dto.EditUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.accountUsecase.EditUser(r.Context(), userID, &req)
	if err != nil {
		if writeValidationError(w, err) {
			return
		}
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to update user")
		}
		return
	}

	response.Success(w, http.StatusOK, "User updated successfully", user)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	user, err := h.accountUsecase.GetUser(r.Context(), userID)
	if err != nil {
		if err == usecase.ErrUserNotFound {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalServerError(w, "Failed to get user")
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}

// GetDetails returns the user card with signed avatar and profile picture links.
func (h *UserHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	details, err := h.accountUsecase.GetDetails(r.Context(), userID)
	if err != nil {
		if err == usecase.ErrUserNotFound {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalServerError(w, "Failed to get user details")
		return
	}

	response.Success(w, http.StatusOK, "User details retrieved successfully", details)
}

func (h *UserHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, "avatar", h.accountUsecase.UpdateAvatar)
}

func (h *UserHandler) UploadProfilePicture(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, "profile_picture", h.accountUsecase.UpdateProfilePicture)
}

type uploadFunc func(ctx context.Context, userID uuid.UUID, filename string, body io.Reader, contentType string) (*dto.UserDetailResponse, error)

// upload reads the multipart file under field and hands it to store.
func (h *UserHandler) upload(w http.ResponseWriter, r *http.Request, field string, store uploadFunc) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		response.ValidationError(w, map[string]string{field: field + " is required"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	details, err := store(r.Context(), userID, header.Filename, file, contentType)
	if err != nil {
		if err == usecase.ErrUserNotFound {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalServerError(w, "Failed to upload "+field)
		return
	}

	response.Success(w, http.StatusOK, "Media uploaded successfully", details)
}

func (h *UserHandler) GetMyProfileCompletion(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	completion, err := h.completionUsecase.GetForUser(r.Context(), userID)
	if err != nil {
		if err == usecase.ErrUserNotFound {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalServerError(w, "Failed to get profile completion")
		return
	}

	response.Success(w, http.StatusOK, "Profile completion retrieved successfully", completion)
}

// ListProfileCompletion reports completion scores for every user of the requested type.
func (h *UserHandler) ListProfileCompletion(w http.ResponseWriter, r *http.Request) {
	userType := r.URL.Query().Get("user_type")
	if userType == "" {
		userType = string(entity.UserTypePatient)
	}
	if !validUserType(userType) {
		response.ValidationError(w, map[string]string{"user_type": "user_type must be one of the allowed values"})
		return
	}

	completions, err := h.completionUsecase.ListByUserType(r.Context(), entity.UserType(userType))
	if err != nil {
		response.InternalServerError(w, "Failed to list profile completion")
		return
	}

	response.Success(w, http.StatusOK, "Profile completion retrieved successfully", completions)
}

func validUserType(userType string) bool {
	for _, choice := range entity.UserTypeChoices {
		if userType == choice {
			return true
		}
	}
	return false
}
