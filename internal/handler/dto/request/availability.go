package request

import (
	"time"

	"staybook/internal/usecase/commands"

	"github.com/google/uuid"
)

type SetAvailabilityRequest struct {
	StartDate          string `json:"start_date" binding:"required"`
	EndDate            string `json:"end_date" binding:"required"`
	AvailableRooms     int32  `json:"available_rooms" binding:"min=0"`
	PriceOverrideCents *int64 `json:"price_override_cents,omitempty"`
}

func (r SetAvailabilityRequest) ToInput(roomID uuid.UUID) (commands.SetAvailabilityInput, error) {
	start, err := time.Parse(time.DateOnly, r.StartDate)
	if err != nil {
		return commands.SetAvailabilityInput{}, err
	}
	end, err := time.Parse(time.DateOnly, r.EndDate)
	if err != nil {
		return commands.SetAvailabilityInput{}, err
	}

	return commands.SetAvailabilityInput{
		RoomID:             roomID,
		StartDate:          start,
		EndDate:            end,
		AvailableRooms:     r.AvailableRooms,
		PriceOverrideCents: r.PriceOverrideCents,
	}, nil
}
