package converter

import (
	"healthcare-backend/internal/delivery/dto"
	"healthcare-backend/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO.
// favourite is the viewer's like value and may be nil.
func DoctorToResponse(doctor *entity.Doctor, favourite *string) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		DoctorID:        doctor.ID,
		UserID:          doctor.UserID,
		Age:             doctor.Age,
		Address:         doctor.Address,
		AboutDoctor:     doctor.AboutDoctor,
		Specialized:     doctor.Specialized,
		Qualification:   doctor.Qualification,
		AvailableTime:   doctor.AvailableTime,
		WorkingDays:     doctor.WorkingDays,
		WorkingHours:    doctor.WorkingHours,
		Experience:      doctor.Experience,
		Favourite:       favourite,
		LastUpdatedDate: doctor.LastUpdatedDate,
	}

	if doctor.User != nil {
		name := doctor.User.DisplayName()
		response.Name = &name
		response.Email = doctor.User.Email
	}

	return response
}

func LikeDoctorToResponse(like *entity.LikeDoctor) *dto.LikeDoctorResponse {
	if like == nil {
		return nil
	}

	return &dto.LikeDoctorResponse{
		ID:              like.ID,
		UserID:          like.UserID,
		DoctorID:        like.DoctorID,
		Favourite:       like.Favourite,
		LastUpdatedDate: like.LastUpdatedDate,
	}
}
