package service

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/vladislavprovich/drivehub/pkg/cache"
	"github.com/vladislavprovich/drivehub/pkg/client/catalogue"
)

type (
	GetInstructorByIDRequest struct {
		ID string `json:"id"`
	}

	Instructor struct {
		ID           string    `json:"id"`
		Name         string    `json:"name"`
		City         string    `json:"city"`
		Postcode     string    `json:"postcode,omitempty"`
		Transmission string    `json:"transmission"`
		HourlyRate   float64   `json:"hourly_rate"`
		Rating       float64   `json:"rating"`
		ReviewCount  int64     `json:"review_count"`
		Languages    []string  `json:"languages,omitempty"`
		Bio          string    `json:"bio,omitempty"`
		Verified     bool      `json:"verified"`
		JoinedAt     time.Time `json:"joined_at"`
	}
)

type (
	ListInstructorsRequest struct {
		City         string `json:"city"`
		Transmission string `json:"transmission"`
		Page         int    `json:"page"`
		Limit        int    `json:"limit"`
	}

	InstructorList struct {
		Instructors []Instructor `json:"instructors"`
		Total       int64        `json:"total"`
		Page        int          `json:"page"`
	}
)

type (
	CacheStatsResponse struct {
		Instructors CacheStats `json:"instructors"`
		Lists       CacheStats `json:"lists"`
	}

	CacheStats struct {
		cache.Stats
		MaxSize     int      `json:"max_size"`
		ApproxBytes int      `json:"approx_bytes"`
		ValidKeys   []string `json:"valid_keys"`
	}

	ClearExpiredResponse struct {
		Instructors int `json:"instructors"`
		Lists       int `json:"lists"`
	}

	HealthResponse struct {
		Status int `json:"status"`
	}
)

func (r *GetInstructorByIDRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ID, validation.Required),
	)
}

func (r *ListInstructorsRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Transmission,
			validation.In(catalogue.TransmissionManual, catalogue.TransmissionAutomatic),
		),
		validation.Field(&r.Page, validation.Min(0)),
		validation.Field(&r.Limit, validation.Min(0), validation.Max(catalogue.MaxPageLimit)),
	)
}
