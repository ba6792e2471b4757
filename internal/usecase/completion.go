package usecase

import (
	"math"

	"healthcare-backend/internal/domain/entity"
)

// The checklists below deliberately list phone_number (and, for patients,
// blood_group) twice. Existing scores were computed against these exact lists,
// so the denominators are 29 and 17.

func userChecklist(u *entity.User) []bool {
	return []bool{
		u.FirstName != nil,
		u.LastName != nil,
		u.DOB != nil,
		u.PhoneNumber != nil,
		true, // email is mandatory
		u.Gender != nil,
		u.PhoneNumber != nil,
		u.ProfilePicture != nil,
	}
}

func patientChecklist(u *entity.User, p *entity.PatientInfo) []bool {
	return append(userChecklist(u),
		p.Title != nil,
		p.Age != nil,
		p.Address != nil,
		p.HealthToday != nil,
		p.Allergies != nil,
		p.Medications != nil,
		p.FamilyHealthHistory != nil,
		p.Occupation != nil,
		p.PhysicalActivity != nil,
		p.Habits != nil,
		p.BusySchedule != nil,
		p.BloodGroup != nil,
		p.Height != nil,
		p.Weight != nil,
		p.BloodGroup != nil,
		p.Disability != nil,
		p.Genotype != nil,
		p.SupportNeeded != nil,
		p.EmergencyContactName != nil,
		p.EmergencyContact != nil,
		p.EmergencyContactEmail != nil,
	)
}

func doctorChecklist(u *entity.User, d *entity.Doctor) []bool {
	return append(userChecklist(u),
		d.Age != nil,
		d.Address != nil,
		d.AboutDoctor != nil,
		d.Specialized != nil,
		d.Qualification != nil,
		d.AvailableTime != nil,
		d.WorkingDays != nil,
		d.WorkingHours != nil,
		d.Experience != nil,
	)
}

// PatientCompletion scores how much of the patient checklist is filled.
// A user without a PatientInfo record scores 0.
func PatientCompletion(u *entity.User, p *entity.PatientInfo) int {
	if u == nil || p == nil {
		return 0
	}
	return completionPercent(patientChecklist(u, p))
}

// DoctorCompletion scores how much of the doctor checklist is filled.
// A user without a Doctor record scores 0.
func DoctorCompletion(u *entity.User, d *entity.Doctor) int {
	if u == nil || d == nil {
		return 0
	}
	return completionPercent(doctorChecklist(u, d))
}

func completionPercent(checklist []bool) int {
	filled := 0
	for _, ok := range checklist {
		if ok {
			filled++
		}
	}
	return roundPercent(filled, len(checklist))
}

// roundPercent returns 100*filled/total rounded half to even.
func roundPercent(filled, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.RoundToEven(100 * float64(filled) / float64(total)))
}
