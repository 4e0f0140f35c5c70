package request

import (
	"strings"
	"time"

	"staybook/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID          uuid.UUID `json:"room_id" binding:"required"`
	CheckInDate     string    `json:"check_in_date" binding:"required"`
	CheckOutDate    string    `json:"check_out_date" binding:"required"`
	NumGuests       int32     `json:"num_guests" binding:"required,min=1"`
	NumRoomsBooked  int32     `json:"num_rooms_booked" binding:"required,min=1"`
	SpecialRequests *string   `json:"special_requests,omitempty"`
}

func (r CreateBookingRequest) ToInput() (commands.ReserveBookingInput, error) {
	checkIn, err := time.Parse(time.DateOnly, r.CheckInDate)
	if err != nil {
		return commands.ReserveBookingInput{}, err
	}
	checkOut, err := time.Parse(time.DateOnly, r.CheckOutDate)
	if err != nil {
		return commands.ReserveBookingInput{}, err
	}

	var requests string
	if r.SpecialRequests != nil {
		requests = strings.TrimSpace(*r.SpecialRequests)
	}

	return commands.ReserveBookingInput{
		RoomID:          r.RoomID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumGuests:       r.NumGuests,
		NumRoomsBooked:  r.NumRoomsBooked,
		SpecialRequests: requests,
	}, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
