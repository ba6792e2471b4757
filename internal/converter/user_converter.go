package converter

import (
	"healthcare-backend/internal/delivery/dto"
	"healthcare-backend/internal/domain/entity"
)

// UserToResponse converts a User entity, with whichever extensions are loaded, to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		Name:           user.Name,
		FullName:       user.FullName,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Gender:         user.Gender,
		PhoneNumber:    user.PhoneNumber,
		DOB:            formatDate(user.DOB),
		Avatar:         user.Avatar,
		ProfilePicture: user.ProfilePicture,
		Linkedin:       user.Linkedin,
		EmailVerified:  user.EmailVerified,
		IsActive:       user.IsActive,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}

	if user.Profile != nil {
		response.Profile = &dto.ProfileResponse{
			ID:       user.Profile.ID,
			UserType: string(user.Profile.UserType),
		}
	}
	response.PatientInfo = PatientInfoToResponse(user.PatientInfo)
	response.DoctorInfo = DoctorToResponse(user.Doctor, nil)
	response.InstructorInfo = InstructorToResponse(user.Instructor)

	return response
}

// UserToDetailResponse converts a User entity to the public card, carrying the signed media links
func UserToDetailResponse(user *entity.User, avatarURL, profilePictureURL *string) *dto.UserDetailResponse {
	if user == nil {
		return nil
	}

	return &dto.UserDetailResponse{
		ID:                      user.ID,
		Name:                    user.Name,
		FullName:                user.FullName,
		Gender:                  user.Gender,
		Email:                   user.Email,
		PhoneNumber:             user.PhoneNumber,
		Avatar:                  user.Avatar,
		AvatarSignedURL:         avatarURL,
		ProfilePicture:          user.ProfilePicture,
		ProfilePictureSignedURL: profilePictureURL,
	}
}

func PatientInfoToResponse(info *entity.PatientInfo) *dto.PatientInfoResponse {
	if info == nil {
		return nil
	}

	return &dto.PatientInfoResponse{
		PatientID:             info.ID,
		Title:                 info.Title,
		Age:                   info.Age,
		Address:               info.Address,
		AgeRange:              info.AgeRange,
		HealthToday:           info.HealthToday,
		Allergies:             info.Allergies,
		Medications:           info.Medications,
		FamilyHealthHistory:   info.FamilyHealthHistory,
		Occupation:            info.Occupation,
		PhysicalActivity:      info.PhysicalActivity,
		Habits:                info.Habits,
		BusySchedule:          info.BusySchedule,
		SupportNeeded:         []string(info.SupportNeeded),
		Height:                info.Height,
		Weight:                info.Weight,
		BloodGroup:            info.BloodGroup,
		Disability:            info.Disability,
		Genotype:              info.Genotype,
		EmergencyContactName:  info.EmergencyContactName,
		EmergencyContact:      info.EmergencyContact,
		EmergencyContactEmail: info.EmergencyContactEmail,
	}
}

func InstructorToResponse(instructor *entity.Instructor) *dto.InstructorResponse {
	if instructor == nil {
		return nil
	}

	return &dto.InstructorResponse{
		InstructorID:    instructor.ID,
		Age:             instructor.Age,
		Address:         instructor.Address,
		AboutInstructor: instructor.AboutInstructor,
		Specialized:     instructor.Specialized,
		Qualification:   instructor.Qualification,
		LastUpdatedDate: instructor.LastUpdatedDate,
	}
}
