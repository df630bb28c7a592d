package catalogue

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	TransmissionManual    = "manual"
	TransmissionAutomatic = "automatic"

	MaxPageLimit = 100
)

type (
	GetInstructorByIDRequest struct {
		ID string `json:"id"`
	}

	GetInstructorByIDResponse struct {
		Instructor
	}

	Instructor struct {
		ID           string    `json:"id"`
		Name         string    `json:"name"`
		City         string    `json:"city"`
		Postcode     string    `json:"postcode"`
		Transmission string    `json:"transmission"`
		HourlyRate   float64   `json:"hourlyRate"`
		Rating       float64   `json:"rating"`
		ReviewCount  int64     `json:"reviewCount"`
		Languages    []string  `json:"languages"`
		Bio          string    `json:"bio"`
		Verified     bool      `json:"verified"`
		JoinedAt     time.Time `json:"joinedAt"`
	}
)

type (
	ListInstructorsRequest struct {
		City         string `json:"city"`
		Transmission string `json:"transmission"`
		Page         int    `json:"page"`
		Limit        int    `json:"limit"`
	}

	ListInstructorsResponse struct {
		Instructors []Instructor `json:"instructors"`
		Total       int64        `json:"total"`
		Page        int          `json:"page"`
	}
)

type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int64  `json:"-"`
}

func (r *GetInstructorByIDRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ID, validation.Required),
	)
}

func (r *ListInstructorsRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Transmission, validation.In(TransmissionManual, TransmissionAutomatic)),
		validation.Field(&r.Page, validation.Min(0)),
		validation.Field(&r.Limit, validation.Min(0), validation.Max(MaxPageLimit)),
	)
}
