package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomRow struct {
	ID                 uuid.UUID
	HotelID            uuid.UUID
	RoomType           string
	Description        pgtype.Text
	Capacity           int32
	PricePerNightCents int64
	TotalRooms         int32
	Amenities          pgtype.Text
	ImageURLs          pgtype.Text
	CreatedAt          pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
}

const roomColumns = `id, hotel_id, room_type, description, capacity,
       price_per_night_cents, total_rooms, amenities, image_urls,
       created_at, updated_at`

const getRoomByID = `
SELECT ` + roomColumns + `
FROM rooms
WHERE id = $1
`

func (q *Queries) GetRoomByID(ctx context.Context, db DBTX, id uuid.UUID) (RoomRow, error) {
	var row RoomRow
	err := db.QueryRow(ctx, getRoomByID, id).Scan(
		&row.ID, &row.HotelID, &row.RoomType, &row.Description, &row.Capacity,
		&row.PricePerNightCents, &row.TotalRooms, &row.Amenities, &row.ImageURLs,
		&row.CreatedAt, &row.UpdatedAt,
	)
	return row, err
}

const listRoomsByHotel = `
SELECT ` + roomColumns + `
FROM rooms
WHERE hotel_id = $1
ORDER BY room_type
`

func (q *Queries) ListRoomsByHotel(ctx context.Context, db DBTX, hotelID uuid.UUID) ([]RoomRow, error) {
	rows, err := db.Query(ctx, listRoomsByHotel, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []RoomRow
	for rows.Next() {
		var row RoomRow
		if err := rows.Scan(
			&row.ID, &row.HotelID, &row.RoomType, &row.Description, &row.Capacity,
			&row.PricePerNightCents, &row.TotalRooms, &row.Amenities, &row.ImageURLs,
			&row.CreatedAt, &row.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

type HotelRow struct {
	ID          uuid.UUID
	Name        string
	Address     string
	City        string
	State       string
	Country     string
	PostalCode  pgtype.Text
	Description pgtype.Text
	StarRating  int32
	ImageURL    pgtype.Text
	ManagerID   pgtype.UUID
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

const hotelColumns = `id, name, address, city, state, country, postal_code,
       description, star_rating, image_url, manager_id, created_at, updated_at`

const getHotelByID = `
SELECT ` + hotelColumns + `
FROM hotels
WHERE id = $1
`

func (q *Queries) GetHotelByID(ctx context.Context, db DBTX, id uuid.UUID) (HotelRow, error) {
	var row HotelRow
	err := db.QueryRow(ctx, getHotelByID, id).Scan(
		&row.ID, &row.Name, &row.Address, &row.City, &row.State, &row.Country,
		&row.PostalCode, &row.Description, &row.StarRating, &row.ImageURL,
		&row.ManagerID, &row.CreatedAt, &row.UpdatedAt,
	)
	return row, err
}

const listHotels = `
SELECT ` + hotelColumns + `
FROM hotels
ORDER BY name
`

func (q *Queries) ListHotels(ctx context.Context, db DBTX) ([]HotelRow, error) {
	rows, err := db.Query(ctx, listHotels)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHotelRows(rows)
}

type SearchHotelsParams struct {
	City          string
	MinStarRating pgtype.Int4
}

const searchHotels = `
SELECT ` + hotelColumns + `
FROM hotels
WHERE city ILIKE '%' || $1 || '%'
  AND ($2::int IS NULL OR star_rating >= $2)
ORDER BY name
`

func (q *Queries) SearchHotels(ctx context.Context, db DBTX, arg SearchHotelsParams) ([]HotelRow, error) {
	rows, err := db.Query(ctx, searchHotels, arg.City, arg.MinStarRating)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHotelRows(rows)
}

func scanHotelRows(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]HotelRow, error) {
	var result []HotelRow
	for rows.Next() {
		var row HotelRow
		if err := rows.Scan(
			&row.ID, &row.Name, &row.Address, &row.City, &row.State, &row.Country,
			&row.PostalCode, &row.Description, &row.StarRating, &row.ImageURL,
			&row.ManagerID, &row.CreatedAt, &row.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
