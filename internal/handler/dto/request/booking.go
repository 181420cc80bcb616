package request

import (
	"strings"
	"time"

	"home-dispatch/internal/usecase/commands"
)

type CreateBookingRequest struct {
	ServiceCategory string     `json:"service_category" binding:"required"`
	Requirements    string     `json:"requirements" binding:"max=2000"`
	AddressLine     string     `json:"address_line" binding:"required,max=500"`
	City            string     `json:"city" binding:"max=200"`
	PostalCode      string     `json:"postal_code" binding:"max=20"`
	Latitude        *float64   `json:"latitude" binding:"required_with=Longitude"`
	Longitude       *float64   `json:"longitude" binding:"required_with=Latitude"`
	EstimatedCost   int64      `json:"estimated_cost" binding:"gte=0"`
	ScheduledAt     *time.Time `json:"scheduled_at"`
}

func (r CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		Category:      strings.TrimSpace(r.ServiceCategory),
		Requirements:  strings.TrimSpace(r.Requirements),
		AddressLine:   strings.TrimSpace(r.AddressLine),
		City:          strings.TrimSpace(r.City),
		PostalCode:    strings.TrimSpace(r.PostalCode),
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
		EstimatedCost: r.EstimatedCost,
		ScheduledAt:   r.ScheduledAt,
	}
}
