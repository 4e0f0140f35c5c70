package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AvailabilityRow struct {
	ID                 uuid.UUID
	RoomID             uuid.UUID
	Date               pgtype.Date
	AvailableRooms     int32
	PriceOverrideCents pgtype.Int8
	UpdatedAt          pgtype.Timestamptz
}

type AvailabilityLevelRow struct {
	AvailableRooms      int32
	EffectivePriceCents int64
}

type GetAvailabilityForDateParams struct {
	RoomID uuid.UUID
	Date   pgtype.Date
}

const getAvailabilityForDate = `
SELECT ra.available_rooms,
       COALESCE(ra.price_override_cents, r.price_per_night_cents) AS effective_price_cents
FROM room_availability ra
JOIN rooms r ON r.id = ra.room_id
WHERE ra.room_id = $1 AND ra.date = $2
`

// GetAvailabilityForDate returns the remaining units and the effective
// nightly price (override if set, catalog base price otherwise) for one
// room-night. pgx.ErrNoRows means no ledger record exists for that date.
func (q *Queries) GetAvailabilityForDate(ctx context.Context, db DBTX, arg GetAvailabilityForDateParams) (AvailabilityLevelRow, error) {
	var row AvailabilityLevelRow
	err := db.QueryRow(ctx, getAvailabilityForDate, arg.RoomID, arg.Date).
		Scan(&row.AvailableRooms, &row.EffectivePriceCents)
	return row, err
}

type AdjustAvailabilityParams struct {
	RoomID   uuid.UUID
	Date     pgtype.Date
	Quantity int32
}

const decrementAvailableRooms = `
UPDATE room_availability
SET available_rooms = available_rooms - $3, updated_at = now()
WHERE room_id = $1 AND date = $2 AND available_rooms >= $3
RETURNING available_rooms
`

// DecrementAvailableRooms conditionally takes units from one room-night.
// The guard available_rooms >= quantity makes check-and-update a single
// indivisible statement; pgx.ErrNoRows means the row is missing or the
// remaining units are insufficient.
func (q *Queries) DecrementAvailableRooms(ctx context.Context, db DBTX, arg AdjustAvailabilityParams) (int32, error) {
	var remaining int32
	err := db.QueryRow(ctx, decrementAvailableRooms, arg.RoomID, arg.Date, arg.Quantity).
		Scan(&remaining)
	return remaining, err
}

const incrementAvailableRooms = `
UPDATE room_availability
SET available_rooms = available_rooms + $3, updated_at = now()
WHERE room_id = $1 AND date = $2
RETURNING available_rooms
`

func (q *Queries) IncrementAvailableRooms(ctx context.Context, db DBTX, arg AdjustAvailabilityParams) (int32, error) {
	var remaining int32
	err := db.QueryRow(ctx, incrementAvailableRooms, arg.RoomID, arg.Date, arg.Quantity).
		Scan(&remaining)
	return remaining, err
}

type UpsertAvailabilityParams struct {
	RoomID             uuid.UUID
	Date               pgtype.Date
	AvailableRooms     int32
	PriceOverrideCents pgtype.Int8
}

const upsertAvailability = `
INSERT INTO room_availability (room_id, date, available_rooms, price_override_cents)
VALUES ($1, $2, $3, $4)
ON CONFLICT (room_id, date) DO UPDATE SET
    available_rooms = EXCLUDED.available_rooms,
    price_override_cents = COALESCE(EXCLUDED.price_override_cents, room_availability.price_override_cents),
    updated_at = now()
RETURNING id, room_id, date, available_rooms, price_override_cents, updated_at
`

func (q *Queries) UpsertAvailability(ctx context.Context, db DBTX, arg UpsertAvailabilityParams) (AvailabilityRow, error) {
	var row AvailabilityRow
	err := db.QueryRow(ctx, upsertAvailability, arg.RoomID, arg.Date, arg.AvailableRooms, arg.PriceOverrideCents).
		Scan(&row.ID, &row.RoomID, &row.Date, &row.AvailableRooms, &row.PriceOverrideCents, &row.UpdatedAt)
	return row, err
}

type GetAvailabilityRangeParams struct {
	RoomID    uuid.UUID
	StartDate pgtype.Date
	EndDate   pgtype.Date
}

const getAvailabilityRange = `
SELECT id, room_id, date, available_rooms, price_override_cents, updated_at
FROM room_availability
WHERE room_id = $1 AND date BETWEEN $2 AND $3
ORDER BY date
`

func (q *Queries) GetAvailabilityRange(ctx context.Context, db DBTX, arg GetAvailabilityRangeParams) ([]AvailabilityRow, error) {
	rows, err := db.Query(ctx, getAvailabilityRange, arg.RoomID, arg.StartDate, arg.EndDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []AvailabilityRow
	for rows.Next() {
		var row AvailabilityRow
		if err := rows.Scan(&row.ID, &row.RoomID, &row.Date, &row.AvailableRooms, &row.PriceOverrideCents, &row.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

type GetEffectiveAvailabilityRangeParams struct {
	RoomID    uuid.UUID
	StartDate pgtype.Date
	EndDate   pgtype.Date
}

type EffectiveAvailabilityRow struct {
	Date                pgtype.Date
	AvailableRooms      int32
	EffectivePriceCents int64
}

const getEffectiveAvailabilityRange = `
SELECT ra.date, ra.available_rooms,
       COALESCE(ra.price_override_cents, r.price_per_night_cents) AS effective_price_cents
FROM room_availability ra
JOIN rooms r ON r.id = ra.room_id
WHERE ra.room_id = $1 AND ra.date BETWEEN $2 AND $3
ORDER BY ra.date
`

// GetEffectiveAvailabilityRange is the search-path variant of the range scan:
// one query per room instead of one per room-night.
func (q *Queries) GetEffectiveAvailabilityRange(ctx context.Context, db DBTX, arg GetEffectiveAvailabilityRangeParams) ([]EffectiveAvailabilityRow, error) {
	rows, err := db.Query(ctx, getEffectiveAvailabilityRange, arg.RoomID, arg.StartDate, arg.EndDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []EffectiveAvailabilityRow
	for rows.Next() {
		var row EffectiveAvailabilityRow
		if err := rows.Scan(&row.Date, &row.AvailableRooms, &row.EffectivePriceCents); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
