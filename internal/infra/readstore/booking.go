package readstore

import (
	"context"

	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	queries *db.Queries
	db      db.DBTX
}

func NewBookingReadStore(q *db.Queries, dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: q,
		db:      dbtx,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return rowToBookingView(row), nil
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}

	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = rowToBookingView(row)
	}

	return result, nil
}

func rowToBookingView(row db.BookingViewRow) *queries.BookingView {
	return &queries.BookingView{
		ID:              row.ID,
		UserID:          row.UserID,
		UserEmail:       row.UserEmail,
		RoomID:          row.RoomID,
		RoomType:        row.RoomType,
		HotelID:         row.HotelID,
		HotelName:       row.HotelName,
		CheckInDate:     pgconv.DateFromPgtype(row.CheckInDate),
		CheckOutDate:    pgconv.DateFromPgtype(row.CheckOutDate),
		NumGuests:       row.NumGuests,
		NumRoomsBooked:  row.NumRoomsBooked,
		TotalPriceCents: row.TotalPriceCents,
		Status:          row.Status,
		PaymentStatus:   row.PaymentStatus,
		SpecialRequests: pgconv.StringPtrFromPgtype(row.SpecialRequests),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
