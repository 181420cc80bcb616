package request

import (
	"home-dispatch/internal/usecase/commands"

	"github.com/google/uuid"
)

type AvailabilityRequest struct {
	Categories []string `json:"categories" binding:"required,min=1,dive,required"`
	Latitude   *float64 `json:"latitude" binding:"required"`
	Longitude  *float64 `json:"longitude" binding:"required"`
}

func (r AvailabilityRequest) ToCommand() commands.AvailabilityRequest {
	return commands.AvailabilityRequest{
		Categories: r.Categories,
		Latitude:   *r.Latitude,
		Longitude:  *r.Longitude,
	}
}

type LocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

type BroadcastRequest struct {
	ProviderIDs []uuid.UUID `json:"provider_ids" binding:"required"`
}
