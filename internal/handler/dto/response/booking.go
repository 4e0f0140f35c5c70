package response

import (
	"time"

	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"userId"`
	UserEmail       string    `json:"userEmail"`
	RoomID          uuid.UUID `json:"roomId"`
	RoomType        string    `json:"roomType"`
	HotelID         uuid.UUID `json:"hotelId"`
	HotelName       string    `json:"hotelName"`
	CheckInDate     string    `json:"checkInDate"`
	CheckOutDate    string    `json:"checkOutDate"`
	NumGuests       int32     `json:"numGuests"`
	NumRoomsBooked  int32     `json:"numRoomsBooked"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"paymentStatus"`
	SpecialRequests *string   `json:"specialRequests,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              view.ID,
		UserID:          view.UserID,
		UserEmail:       view.UserEmail,
		RoomID:          view.RoomID,
		RoomType:        view.RoomType,
		HotelID:         view.HotelID,
		HotelName:       view.HotelName,
		CheckInDate:     view.CheckInDate.Format(time.DateOnly),
		CheckOutDate:    view.CheckOutDate.Format(time.DateOnly),
		NumGuests:       view.NumGuests,
		NumRoomsBooked:  view.NumRoomsBooked,
		TotalPriceCents: view.TotalPriceCents,
		Status:          view.Status,
		PaymentStatus:   view.PaymentStatus,
		SpecialRequests: view.SpecialRequests,
		CreatedAt:       view.CreatedAt,
		UpdatedAt:       view.UpdatedAt,
	}
}
