package converter

import (
	"healthcare-backend/internal/delivery/dto"
	"healthcare-backend/internal/domain/entity"
)

func VitalsToResponse(vitals *entity.Vitals) *dto.VitalsResponse {
	if vitals == nil {
		return nil
	}

	return &dto.VitalsResponse{
		ID:           vitals.ID,
		PatientID:    vitals.PatientID,
		HeartRate:    vitals.HeartRate,
		BloodStatus:  vitals.BloodStatus,
		BloodCount:   vitals.BloodCount,
		GlucoseLevel: vitals.GlucoseLevel,
		Weight:       vitals.Weight,
		Temperature:  vitals.Temperature,
		Pulse:        vitals.Pulse,
		Date:         formatDate(vitals.Date),
		CreatedAt:    vitals.CreatedAt,
	}
}

func VitalsListToResponses(vitals []entity.Vitals) []dto.VitalsResponse {
	responses := make([]dto.VitalsResponse, len(vitals))
	for i := range vitals {
		responses[i] = *VitalsToResponse(&vitals[i])
	}
	return responses
}
