package validator

import (
	"testing"

	"healthcare-backend/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func validSignup() *dto.SignupRequest {
	return &dto.SignupRequest{
		Email:           "jane@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}
}

func TestValidate_ValidSignup(t *testing.T) {
	v := NewValidator()

	req := validSignup()
	req.Gender = ptr("Female")
	req.PatientInfo = &dto.PatientInfoPayload{
		AgeRange:      ptr("30-39"),
		SupportNeeded: []string{"sleep_better", "lose_weight"},
	}

	assert.NoError(t, v.Validate(req))
}

func TestValidate_ChoiceTags(t *testing.T) {
	v := NewValidator()

	req := validSignup()
	req.Gender = ptr("female")
	req.PatientInfo = &dto.PatientInfoPayload{
		AgeRange:      ptr("20-29"),
		SupportNeeded: []string{"sleep_better", "fly"},
	}
	req.Profile = &dto.ProfilePayload{UserType: ptr("nurse")}

	err := v.Validate(req)
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "gender must be one of: Male, Female, others", errs["gender"])
	assert.Contains(t, errs, "patient_info.age_range")
	assert.Contains(t, errs, "patient_info.support_needed[1]")
	assert.NotContains(t, errs, "patient_info.support_needed[0]")
	assert.Contains(t, errs, "profile.user_type")
}

func TestValidate_RequiredAndFormat(t *testing.T) {
	v := NewValidator()

	req := &dto.SignupRequest{Password: "short"}
	req.DOB = ptr("01/02/1990")
	req.DoctorInfo = &dto.DoctorPayload{AvailableTime: ptr("9am")}

	errs := v.FormatValidationErrors(v.Validate(req))

	assert.Equal(t, "email is required", errs["email"])
	assert.Equal(t, "password must be at least 8 characters", errs["password"])
	assert.Equal(t, "confirm_password is required", errs["confirm_password"])
	assert.Equal(t, "dob must match the format 2006-01-02", errs["dob"])
	assert.Equal(t, "doctor_info.available_time must match the format 15:04", errs["doctor_info.available_time"])
}

func TestFormatValidationErrors_NonValidationError(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.FormatValidationErrors(assert.AnError))
}

func TestFieldPath(t *testing.T) {
	tests := []struct {
		namespace string
		want      string
	}{
		{"SignupRequest.email", "email"},
		{"SignupRequest.UserFields.gender", "gender"},
		{"SignupRequest.Extensions.patient_info.age_range", "patient_info.age_range"},
		{"EditUserRequest.Extensions.patient_info.support_needed[2]", "patient_info.support_needed[2]"},
		{"LikeDoctorRequest.DoctorID", "DoctorID"},
	}

	for _, tt := range tests {
		t.Run(tt.namespace, func(t *testing.T) {
			assert.Equal(t, tt.want, fieldPath(tt.namespace))
		})
	}
}
