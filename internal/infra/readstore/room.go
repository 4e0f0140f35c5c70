package readstore

import (
	"context"

	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomReadStore struct {
	queries *db.Queries
	db      db.DBTX
}

func NewRoomReadStore(q *db.Queries, dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: q,
		db:      dbtx,
	}
}

func (r *RoomReadStore) FindRoomByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row, err := r.queries.GetRoomByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return rowToRoomView(row), nil
}

func (r *RoomReadStore) FindRoomsByHotel(ctx context.Context, hotelID uuid.UUID) ([]*queries.RoomView, error) {
	rows, err := r.queries.ListRoomsByHotel(ctx, r.db, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms by hotel", err)
	}

	result := make([]*queries.RoomView, len(rows))
	for i, row := range rows {
		result[i] = rowToRoomView(row)
	}
	return result, nil
}

func rowToRoomView(row db.RoomRow) *queries.RoomView {
	return &queries.RoomView{
		ID:                 row.ID,
		HotelID:            row.HotelID,
		RoomType:           row.RoomType,
		Description:        pgconv.StringPtrFromPgtype(row.Description),
		Capacity:           row.Capacity,
		PricePerNightCents: row.PricePerNightCents,
		TotalRooms:         row.TotalRooms,
		Amenities:          pgconv.StringPtrFromPgtype(row.Amenities),
		ImageURLs:          pgconv.StringPtrFromPgtype(row.ImageURLs),
	}
}
