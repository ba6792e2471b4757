package validator

import (
	"reflect"
	"strings"
	"unicode"

	"healthcare-backend/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

// choiceTags maps a validation tag to the values it accepts.
var choiceTags = map[string][]string{
	"gender":         entity.GenderChoices,
	"user_type":      entity.UserTypeChoices,
	"age_range":      entity.AgeRangeChoices,
	"health_today":   entity.HealthTodayChoices,
	"busy_schedule":  entity.BusyScheduleChoices,
	"support_needed": entity.SupportNeededChoices,
	"specialized":    entity.SpecializedChoices,
	"favourite":      entity.FavouriteChoices,
}

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their JSON name so errors line up with request bodies.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	for tag, choices := range choiceTags {
		_ = v.RegisterValidation(tag, choiceValidator(choices))
	}

	return &CustomValidator{
		validator: v,
	}
}

func choiceValidator(choices []string) validator.Func {
	allowed := make(map[string]struct{}, len(choices))
	for _, c := range choices {
		allowed[c] = struct{}{}
	}
	return func(fl validator.FieldLevel) bool {
		_, ok := allowed[fl.Field().String()]
		return ok
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := fieldPath(e.Namespace())
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "eqfield":
				errors[field] = field + " must match " + e.Param()
			case "oneof":
				errors[field] = field + " must be one of: " + e.Param()
			case "datetime":
				errors[field] = field + " must match the format " + e.Param()
			case "url":
				errors[field] = field + " must be a valid URL"
			default:
				if choices, ok := choiceTags[e.Tag()]; ok {
					errors[field] = field + " must be one of: " + strings.Join(choices, ", ")
					continue
				}
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}

// fieldPath turns a namespace such as "SignupRequest.Extensions.patient_info.age_range"
// into "patient_info.age_range". Segments named after Go types (the root struct and
// embedded structs) start with an upper case letter; JSON names do not.
func fieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	kept := parts[:0]
	for i, p := range parts {
		if p == "" {
			continue
		}
		if i < len(parts)-1 && unicode.IsUpper(rune(p[0])) {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, ".")
}
