package repository

import (
	"context"

	"staybook/internal/domain/booking"
	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingRepository struct {
	dbtx    db.DBTX
	queries *db.Queries
}

func NewBookingRepository(dbtx db.DBTX, queries *db.Queries) *BookingRepository {
	return &BookingRepository{dbtx: dbtx, queries: queries}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	var requests *string
	if !b.SpecialRequests().IsEmpty() {
		v := b.SpecialRequests().String()
		requests = &v
	}

	id, err := r.queries.CreateBooking(ctx, r.dbtx, db.CreateBookingParams{
		ID:              b.ID(),
		UserID:          b.UserID(),
		RoomID:          b.RoomID(),
		CheckInDate:     pgconv.DateToPgtype(b.Stay().CheckIn()),
		CheckOutDate:    pgconv.DateToPgtype(b.Stay().CheckOut()),
		NumGuests:       b.NumGuests(),
		NumRoomsBooked:  b.NumRoomsBooked(),
		TotalPriceCents: b.TotalPrice().Cents(),
		Status:          string(b.Status()),
		PaymentStatus:   string(b.PaymentStatus()),
		SpecialRequests: pgconv.StringPtrToPgtype(requests),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

// Cancel applies the guarded transition. A no-rows result means a concurrent
// actor already moved the booking out of a cancellable state.
func (r *BookingRepository) Cancel(ctx context.Context, id uuid.UUID) error {
	if _, err := r.queries.CancelBooking(ctx, r.dbtx, id); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("booking is not cancellable", err, infra.KindStateConflict)
		}
		return infra.WrapRepoErr("failed to cancel booking", err)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	if _, err := r.queries.UpdateBookingStatus(ctx, r.dbtx, db.UpdateBookingStatusParams{
		ID:     id,
		Status: string(status),
	}); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	return nil
}
