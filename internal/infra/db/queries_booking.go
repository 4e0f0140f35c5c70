package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CreateBookingParams struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	RoomID          uuid.UUID
	CheckInDate     pgtype.Date
	CheckOutDate    pgtype.Date
	NumGuests       int32
	NumRoomsBooked  int32
	TotalPriceCents int64
	Status          string
	PaymentStatus   string
	SpecialRequests pgtype.Text
}

const createBooking = `
INSERT INTO bookings (id, user_id, room_id, check_in_date, check_out_date,
                      num_guests, num_rooms_booked, total_price_cents,
                      status, payment_status, special_requests)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id
`

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, createBooking,
		arg.ID, arg.UserID, arg.RoomID, arg.CheckInDate, arg.CheckOutDate,
		arg.NumGuests, arg.NumRoomsBooked, arg.TotalPriceCents,
		arg.Status, arg.PaymentStatus, arg.SpecialRequests,
	).Scan(&id)
	return id, err
}

type BookingRow struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	RoomID          uuid.UUID
	CheckInDate     pgtype.Date
	CheckOutDate    pgtype.Date
	NumGuests       int32
	NumRoomsBooked  int32
	TotalPriceCents int64
	Status          string
	PaymentStatus   string
	SpecialRequests pgtype.Text
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

const getBookingByID = `
SELECT id, user_id, room_id, check_in_date, check_out_date,
       num_guests, num_rooms_booked, total_price_cents,
       status, payment_status, special_requests, created_at, updated_at
FROM bookings
WHERE id = $1
`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (BookingRow, error) {
	var row BookingRow
	err := db.QueryRow(ctx, getBookingByID, id).Scan(
		&row.ID, &row.UserID, &row.RoomID, &row.CheckInDate, &row.CheckOutDate,
		&row.NumGuests, &row.NumRoomsBooked, &row.TotalPriceCents,
		&row.Status, &row.PaymentStatus, &row.SpecialRequests, &row.CreatedAt, &row.UpdatedAt,
	)
	return row, err
}

// GetBookingByIDForUpdate locks the booking row for the rest of the
// transaction so two concurrent cancellations cannot both pass the status
// guard.
const getBookingByIDForUpdate = getBookingByID + ` FOR UPDATE`

func (q *Queries) GetBookingByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (BookingRow, error) {
	var row BookingRow
	err := db.QueryRow(ctx, getBookingByIDForUpdate, id).Scan(
		&row.ID, &row.UserID, &row.RoomID, &row.CheckInDate, &row.CheckOutDate,
		&row.NumGuests, &row.NumRoomsBooked, &row.TotalPriceCents,
		&row.Status, &row.PaymentStatus, &row.SpecialRequests, &row.CreatedAt, &row.UpdatedAt,
	)
	return row, err
}

type BookingViewRow struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	UserEmail       string
	RoomID          uuid.UUID
	RoomType        string
	HotelID         uuid.UUID
	HotelName       string
	CheckInDate     pgtype.Date
	CheckOutDate    pgtype.Date
	NumGuests       int32
	NumRoomsBooked  int32
	TotalPriceCents int64
	Status          string
	PaymentStatus   string
	SpecialRequests pgtype.Text
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

const getBookingViewByID = `
SELECT b.id, b.user_id, u.email, b.room_id, r.room_type, h.id, h.name,
       b.check_in_date, b.check_out_date, b.num_guests, b.num_rooms_booked,
       b.total_price_cents, b.status, b.payment_status, b.special_requests,
       b.created_at, b.updated_at
FROM bookings b
JOIN users u ON u.id = b.user_id
JOIN rooms r ON r.id = b.room_id
JOIN hotels h ON h.id = r.hotel_id
WHERE b.id = $1
`

func (q *Queries) GetBookingViewByID(ctx context.Context, db DBTX, id uuid.UUID) (BookingViewRow, error) {
	var row BookingViewRow
	err := db.QueryRow(ctx, getBookingViewByID, id).Scan(
		&row.ID, &row.UserID, &row.UserEmail, &row.RoomID, &row.RoomType, &row.HotelID, &row.HotelName,
		&row.CheckInDate, &row.CheckOutDate, &row.NumGuests, &row.NumRoomsBooked,
		&row.TotalPriceCents, &row.Status, &row.PaymentStatus, &row.SpecialRequests,
		&row.CreatedAt, &row.UpdatedAt,
	)
	return row, err
}

const listBookingsByUser = `
SELECT b.id, b.user_id, u.email, b.room_id, r.room_type, h.id, h.name,
       b.check_in_date, b.check_out_date, b.num_guests, b.num_rooms_booked,
       b.total_price_cents, b.status, b.payment_status, b.special_requests,
       b.created_at, b.updated_at
FROM bookings b
JOIN users u ON u.id = b.user_id
JOIN rooms r ON r.id = b.room_id
JOIN hotels h ON h.id = r.hotel_id
WHERE b.user_id = $1
ORDER BY b.created_at DESC
`

func (q *Queries) ListBookingsByUser(ctx context.Context, db DBTX, userID uuid.UUID) ([]BookingViewRow, error) {
	rows, err := db.Query(ctx, listBookingsByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []BookingViewRow
	for rows.Next() {
		var row BookingViewRow
		if err := rows.Scan(
			&row.ID, &row.UserID, &row.UserEmail, &row.RoomID, &row.RoomType, &row.HotelID, &row.HotelName,
			&row.CheckInDate, &row.CheckOutDate, &row.NumGuests, &row.NumRoomsBooked,
			&row.TotalPriceCents, &row.Status, &row.PaymentStatus, &row.SpecialRequests,
			&row.CreatedAt, &row.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

type UpdateBookingStatusParams struct {
	ID     uuid.UUID
	Status string
}

const updateBookingStatus = `
UPDATE bookings
SET status = $2, updated_at = now()
WHERE id = $1
RETURNING id
`

func (q *Queries) UpdateBookingStatus(ctx context.Context, db DBTX, arg UpdateBookingStatusParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, updateBookingStatus, arg.ID, arg.Status).Scan(&id)
	return id, err
}

// CancelBooking flips the status to cancelled only from a cancellable state.
// The guard mirrors the conditional decrement: zero affected rows means a
// concurrent actor already moved the booking to a terminal state.
const cancelBooking = `
UPDATE bookings
SET status = 'cancelled', updated_at = now()
WHERE id = $1 AND status IN ('pending', 'confirmed')
RETURNING id
`

func (q *Queries) CancelBooking(ctx context.Context, db DBTX, id uuid.UUID) (uuid.UUID, error) {
	var out uuid.UUID
	err := db.QueryRow(ctx, cancelBooking, id).Scan(&out)
	return out, err
}
