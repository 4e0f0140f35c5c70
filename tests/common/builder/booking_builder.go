//go:build unit || e2e

package builder

import (
	"time"

	dombooking "staybook/internal/domain/booking"
	reqdto "staybook/internal/handler/dto/request"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	UserID          uuid.UUID
	UserEmail       string
	RoomID          uuid.UUID
	RoomType        string
	RoomCapacity    int32
	HotelID         uuid.UUID
	HotelName       string
	CheckInDate     time.Time
	CheckOutDate    time.Time
	NumGuests       int32
	NumRoomsBooked  int32
	TotalPriceCents int64
	Status          dombooking.Status
	PaymentStatus   dombooking.PaymentStatus
	SpecialRequests string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		UserID:          uuid.New(),
		UserEmail:       "guest@example.com",
		RoomID:          uuid.New(),
		RoomType:        "Deluxe Double",
		RoomCapacity:    2,
		HotelID:         uuid.New(),
		HotelName:       "Harbor View Hotel",
		CheckInDate:     time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate:    time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
		NumGuests:       2,
		NumRoomsBooked:  1,
		TotalPriceCents: 30000,
		Status:          dombooking.StatusConfirmed,
		PaymentStatus:   dombooking.PaymentPending,
		SpecialRequests: "",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	stay, err := dombooking.NewStayRange(b.CheckInDate, b.CheckOutDate)
	if err != nil {
		return nil, err
	}
	total, err := dombooking.NewMoney(b.TotalPriceCents)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(
		dombooking.RoomSpec{ID: b.RoomID, Capacity: b.RoomCapacity},
		b.UserID,
		stay,
		b.NumGuests,
		b.NumRoomsBooked,
		total,
		dombooking.NewSpecialRequests(b.SpecialRequests),
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	req := reqdto.CreateBookingRequest{
		RoomID:         b.RoomID,
		CheckInDate:    b.CheckInDate.Format(time.DateOnly),
		CheckOutDate:   b.CheckOutDate.Format(time.DateOnly),
		NumGuests:      b.NumGuests,
		NumRoomsBooked: b.NumRoomsBooked,
	}
	if b.SpecialRequests != "" {
		requests := b.SpecialRequests
		req.SpecialRequests = &requests
	}
	return req
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	view := &queries.BookingView{
		ID:              uuid.New(),
		UserID:          b.UserID,
		UserEmail:       b.UserEmail,
		RoomID:          b.RoomID,
		RoomType:        b.RoomType,
		HotelID:         b.HotelID,
		HotelName:       b.HotelName,
		CheckInDate:     b.CheckInDate,
		CheckOutDate:    b.CheckOutDate,
		NumGuests:       b.NumGuests,
		NumRoomsBooked:  b.NumRoomsBooked,
		TotalPriceCents: b.TotalPriceCents,
		Status:          b.Status.String(),
		PaymentStatus:   b.PaymentStatus.String(),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
	if b.SpecialRequests != "" {
		requests := b.SpecialRequests
		view.SpecialRequests = &requests
	}
	return view
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:              uuid.New(),
		UserID:          b.UserID,
		RoomID:          b.RoomID,
		CheckInDate:     b.CheckInDate,
		CheckOutDate:    b.CheckOutDate,
		NumGuests:       b.NumGuests,
		NumRoomsBooked:  b.NumRoomsBooked,
		TotalPriceCents: b.TotalPriceCents,
		Status:          b.Status,
		PaymentStatus:   b.PaymentStatus,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithRoomID(roomID uuid.UUID) *BookingBuilder {
	b.RoomID = roomID
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckInDate = checkIn
	b.CheckOutDate = checkOut
	return b
}

func (b *BookingBuilder) WithNumGuests(n int32) *BookingBuilder {
	b.NumGuests = n
	return b
}

func (b *BookingBuilder) WithNumRoomsBooked(n int32) *BookingBuilder {
	b.NumRoomsBooked = n
	return b
}

func (b *BookingBuilder) WithRoomCapacity(n int32) *BookingBuilder {
	b.RoomCapacity = n
	return b
}

func (b *BookingBuilder) WithTotalPriceCents(cents int64) *BookingBuilder {
	b.TotalPriceCents = cents
	return b
}

func (b *BookingBuilder) WithStatus(status dombooking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithSpecialRequests(requests string) *BookingBuilder {
	b.SpecialRequests = requests
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = dombooking.StatusCancelled
	return b
}

func (b *BookingBuilder) AsCompleted() *BookingBuilder {
	b.Status = dombooking.StatusCompleted
	return b
}
