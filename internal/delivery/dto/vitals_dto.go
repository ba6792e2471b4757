package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateVitalsRequest struct {
	HeartRate    *int             `json:"heart_rate" validate:"omitempty,gte=0"`
	BloodStatus  *string          `json:"blood_status" validate:"omitempty,max=100"`
	BloodCount   *int             `json:"blood_count" validate:"omitempty,gte=0"`
	GlucoseLevel *decimal.Decimal `json:"glucose_level"`
	Weight       *decimal.Decimal `json:"weight"`
	Temperature  *decimal.Decimal `json:"temperature"`
	Pulse        *int             `json:"pulse" validate:"omitempty,gte=0"`
	Date         *string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type VitalsResponse struct {
	ID           uuid.UUID           `json:"id"`
	PatientID    *uuid.UUID          `json:"patient_id"`
	HeartRate    *int                `json:"heart_rate"`
	BloodStatus  *string             `json:"blood_status"`
	BloodCount   *int                `json:"blood_count"`
	GlucoseLevel decimal.NullDecimal `json:"glucose_level"`
	Weight       decimal.NullDecimal `json:"weight"`
	Temperature  decimal.NullDecimal `json:"temperature"`
	Pulse        *int                `json:"pulse"`
	Date         *string             `json:"date"`
	CreatedAt    time.Time           `json:"created_at"`
}

type VitalsListResponse struct {
	Vitals []VitalsResponse `json:"vitals"`
	Total  int              `json:"total"`
}
