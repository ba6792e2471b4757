package usecase

import (
	"strings"
	"time"

	"healthcare-backend/internal/delivery/dto"
	"healthcare-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// extensionKind selects which role specific record a request writes.
type extensionKind int

const (
	extensionNone extensionKind = iota
	extensionPatient
	extensionDoctor
	extensionInstructor
)

func (k extensionKind) String() string {
	switch k {
	case extensionPatient:
		return "patient_info"
	case extensionDoctor:
		return "doctor_info"
	case extensionInstructor:
		return "instructor_info"
	default:
		return "none"
	}
}

const multipleExtensionsMessage = "Only one of patient_info, doctor_info and instructor_info may be sent."

// resolveExtension returns the single extension payload carried by ext, rejecting
// requests that carry more than one.
func resolveExtension(ext *dto.Extensions) (extensionKind, error) {
	var present []extensionKind
	if ext.PatientInfo != nil {
		present = append(present, extensionPatient)
	}
	if ext.DoctorInfo != nil {
		present = append(present, extensionDoctor)
	}
	if ext.InstructorInfo != nil {
		present = append(present, extensionInstructor)
	}

	switch len(present) {
	case 0:
		return extensionNone, nil
	case 1:
		return present[0], nil
	}

	fields := make(map[string]string, len(present))
	for _, k := range present {
		fields[k.String()] = multipleExtensionsMessage
	}
	return extensionNone, NewValidationError(fields)
}

func cleanEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func parseDate(field string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, NewValidationError(map[string]string{field: field + " must match the format 2006-01-02"})
	}
	return &t, nil
}

// applyUserFields copies every field present in f onto user.
func applyUserFields(user *entity.User, f *dto.UserFields, dob *time.Time) {
	if f.Name != nil {
		user.Name = f.Name
	}
	if f.FullName != nil {
		user.FullName = f.FullName
	}
	if f.FirstName != nil {
		user.FirstName = f.FirstName
	}
	if f.LastName != nil {
		user.LastName = f.LastName
	}
	if f.Gender != nil {
		user.Gender = f.Gender
	}
	if f.PhoneNumber != nil {
		user.PhoneNumber = f.PhoneNumber
	}
	if dob != nil {
		user.DOB = dob
	}
	if f.Linkedin != nil {
		user.Linkedin = f.Linkedin
	}
}

func applyProfile(profile *entity.UserProfile, p *dto.ProfilePayload) {
	if p.UserType != nil {
		profile.UserType = entity.UserType(*p.UserType)
	}
}

func applyPatientInfo(info *entity.PatientInfo, p *dto.PatientInfoPayload) {
	if p.Title != nil {
		info.Title = p.Title
	}
	if p.Age != nil {
		info.Age = p.Age
	}
	if p.Address != nil {
		info.Address = p.Address
	}
	if p.AgeRange != nil {
		info.AgeRange = p.AgeRange
	}
	if p.HealthToday != nil {
		info.HealthToday = p.HealthToday
	}
	if p.Allergies != nil {
		info.Allergies = p.Allergies
	}
	if p.Medications != nil {
		info.Medications = p.Medications
	}
	if p.FamilyHealthHistory != nil {
		info.FamilyHealthHistory = p.FamilyHealthHistory
	}
	if p.Occupation != nil {
		info.Occupation = p.Occupation
	}
	if p.PhysicalActivity != nil {
		info.PhysicalActivity = p.PhysicalActivity
	}
	if p.Habits != nil {
		info.Habits = p.Habits
	}
	if p.BusySchedule != nil {
		info.BusySchedule = p.BusySchedule
	}
	if p.SupportNeeded != nil {
		info.SupportNeeded = entity.MultiChoice(p.SupportNeeded)
	}
	if p.Height != nil {
		info.Height = p.Height
	}
	if p.Weight != nil {
		info.Weight = p.Weight
	}
	if p.BloodGroup != nil {
		info.BloodGroup = p.BloodGroup
	}
	if p.Disability != nil {
		info.Disability = p.Disability
	}
	if p.Genotype != nil {
		info.Genotype = p.Genotype
	}
	if p.EmergencyContactName != nil {
		info.EmergencyContactName = p.EmergencyContactName
	}
	if p.EmergencyContact != nil {
		info.EmergencyContact = p.EmergencyContact
	}
	if p.EmergencyContactEmail != nil {
		info.EmergencyContactEmail = p.EmergencyContactEmail
	}
}

func applyDoctor(doctor *entity.Doctor, p *dto.DoctorPayload, editorID uuid.UUID) {
	if p.Age != nil {
		doctor.Age = p.Age
	}
	if p.Address != nil {
		doctor.Address = p.Address
	}
	if p.AboutDoctor != nil {
		doctor.AboutDoctor = p.AboutDoctor
	}
	if p.Specialized != nil {
		doctor.Specialized = p.Specialized
	}
	if p.Qualification != nil {
		doctor.Qualification = p.Qualification
	}
	if p.AvailableTime != nil {
		doctor.AvailableTime = p.AvailableTime
	}
	if p.WorkingDays != nil {
		doctor.WorkingDays = p.WorkingDays
	}
	if p.WorkingHours != nil {
		doctor.WorkingHours = p.WorkingHours
	}
	if p.Experience != nil {
		doctor.Experience = p.Experience
	}
	doctor.LastUpdatedByID = &editorID
}

func applyInstructor(instructor *entity.Instructor, p *dto.InstructorPayload, editorID uuid.UUID) {
	if p.Age != nil {
		instructor.Age = p.Age
	}
	if p.Address != nil {
		instructor.Address = p.Address
	}
	if p.AboutInstructor != nil {
		instructor.AboutInstructor = p.AboutInstructor
	}
	if p.Specialized != nil {
		instructor.Specialized = p.Specialized
	}
	if p.Qualification != nil {
		instructor.Qualification = p.Qualification
	}
	instructor.LastUpdatedByID = &editorID
}
