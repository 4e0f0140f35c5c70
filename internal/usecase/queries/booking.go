package queries

import (
	"context"
	"time"

	"staybook/internal/infra"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound     = errs.New("booking not found")
	ErrBookingAccessDenied = errs.New("booking access denied")
)

// BookingView is the read model for one booking, joined with the room and
// hotel it was made against.
type BookingView struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	UserEmail       string    `json:"user_email"`
	RoomID          uuid.UUID `json:"room_id"`
	RoomType        string    `json:"room_type"`
	HotelID         uuid.UUID `json:"hotel_id"`
	HotelName       string    `json:"hotel_name"`
	CheckInDate     time.Time `json:"check_in_date"`
	CheckOutDate    time.Time `json:"check_out_date"`
	NumGuests       int32     `json:"num_guests"`
	NumRoomsBooked  int32     `json:"num_rooms_booked"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"payment_status"`
	SpecialRequests *string   `json:"special_requests,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, err
	}

	if !actor.CanActOn(view.UserID) {
		return nil, ErrBookingAccessDenied
	}

	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	return q.readStore.FindByUserID(ctx, userID)
}
