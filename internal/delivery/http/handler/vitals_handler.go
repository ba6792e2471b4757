package handler

import (
	"encoding/json"
	"net/http"

	"healthcare-backend/internal/delivery/dto"
	"healthcare-backend/internal/delivery/http/middleware"
	"healthcare-backend/internal/usecase"
	"healthcare-backend/pkg/response"
	"healthcare-backend/pkg/validator"
)

type VitalsHandler struct {
	vitalsUsecase usecase.VitalsUsecase
	validator     *validator.CustomValidator
}

func NewVitalsHandler(vitalsUsecase usecase.VitalsUsecase, validator *validator.CustomValidator) *VitalsHandler {
	return &VitalsHandler{
		vitalsUsecase: vitalsUsecase,
		validator:     validator,
	}
}

func (h *VitalsHandler) RecordVitals(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dto.CreateVitalsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	vitals, err := h.vitalsUsecase.RecordVitals(r.Context(), userID, &req)
	if err != nil {
		if writeValidationError(w, err) {
			return
		}
		if err == usecase.ErrPatientInfoNotFound {
			response.NotFound(w, "Patient info not found")
			return
		}
		response.InternalServerError(w, "Failed to record vitals")
		return
	}

	response.Success(w, http.StatusCreated, "Vitals recorded successfully", vitals)
}

func (h *VitalsHandler) GetMyVitals(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	vitals, err := h.vitalsUsecase.GetMyVitals(r.Context(), userID)
	if err != nil {
		if err == usecase.ErrPatientInfoNotFound {
			response.NotFound(w, "Patient info not found")
			return
		}
		response.InternalServerError(w, "Failed to get vitals")
		return
	}

	response.Success(w, http.StatusOK, "Vitals retrieved successfully", vitals)
}
