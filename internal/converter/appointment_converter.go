package converter

import (
	"healthcare-backend/internal/delivery/dto"
	"healthcare-backend/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		DoctorID:        appointment.DoctorID,
		UserID:          appointment.UserID,
		Date:            formatDate(appointment.Date),
		ConsultTime:     appointment.ConsultTime,
		DoctorQueries:   appointment.DoctorQueries,
		HealthIssue:     appointment.HealthIssue,
		Feedback:        appointment.Feedback,
		Ratings:         appointment.Ratings,
		Status:          appointment.Status,
		CreatedAt:       appointment.CreatedAt,
		LastUpdatedDate: appointment.LastUpdatedDate,
	}

	// Include doctor info if available
	if appointment.Doctor != nil {
		response.Specialization = appointment.Doctor.Specialized
		if appointment.Doctor.User != nil {
			name := appointment.Doctor.User.DisplayName()
			response.DoctorName = &name
		}
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
