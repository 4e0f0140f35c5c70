package repository

import (
	"context"

	"staybook/internal/domain/booking"
	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

// CommandReads serves the lookups command handlers need before they write:
// catalog facts and the current booking record.
type CommandReads struct {
	dbtx    db.DBTX
	queries *db.Queries
}

func NewCommandReads(dbtx db.DBTX, queries *db.Queries) *CommandReads {
	return &CommandReads{dbtx: dbtx, queries: queries}
}

func (r *CommandReads) RoomByID(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	row, err := r.queries.GetRoomByID(ctx, r.dbtx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get room", err)
	}
	return &shared.RoomSnapshot{
		ID:                 row.ID,
		HotelID:            row.HotelID,
		RoomType:           row.RoomType,
		Capacity:           row.Capacity,
		PricePerNightCents: row.PricePerNightCents,
		TotalRooms:         row.TotalRooms,
	}, nil
}

func (r *CommandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	row, err := r.queries.GetBookingByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, wrapBookingReadErr(err)
	}
	return bookingSnapshotFromRow(row), nil
}

func (r *CommandReads) BookingByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	row, err := r.queries.GetBookingByIDForUpdate(ctx, r.dbtx, id)
	if err != nil {
		return nil, wrapBookingReadErr(err)
	}
	return bookingSnapshotFromRow(row), nil
}

func wrapBookingReadErr(err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to get booking", err)
}

func bookingSnapshotFromRow(row db.BookingRow) *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:              row.ID,
		UserID:          row.UserID,
		RoomID:          row.RoomID,
		CheckInDate:     pgconv.DateFromPgtype(row.CheckInDate),
		CheckOutDate:    pgconv.DateFromPgtype(row.CheckOutDate),
		NumGuests:       row.NumGuests,
		NumRoomsBooked:  row.NumRoomsBooked,
		TotalPriceCents: row.TotalPriceCents,
		Status:          booking.Status(row.Status),
		PaymentStatus:   booking.PaymentStatus(row.PaymentStatus),
	}
}
