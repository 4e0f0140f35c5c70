package queries

import (
	"context"
	"time"

	"staybook/internal/infra"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound     = errs.New("room not found")
	ErrInvalidDateRange = errs.New("invalid date range")
)

// DayAvailabilityView is one room-night as exposed to callers: remaining
// units and the price that would be charged for that night.
type DayAvailabilityView struct {
	Date           time.Time `json:"date"`
	AvailableRooms int32     `json:"available_rooms"`
	PriceCents     int64     `json:"price_cents"`
}

type AvailabilityQueries interface {
	GetRoomAvailability(ctx context.Context, roomID uuid.UUID, startDate, endDate time.Time) ([]*DayAvailabilityView, error)
}

type AvailabilityReadStore interface {
	FindEffectiveRange(ctx context.Context, roomID uuid.UUID, startDate, endDate time.Time) ([]*DayAvailabilityView, error)
}

type availabilityQueriesImpl struct {
	readStore AvailabilityReadStore
	rooms     RoomReadStore
}

func NewAvailabilityQueries(readStore AvailabilityReadStore, rooms RoomReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{readStore: readStore, rooms: rooms}
}

// GetRoomAvailability lists the ledger for one room over a date span.
// Dates without a ledger record are absent from the result; absence means
// the room is not sellable on that date.
func (q *availabilityQueriesImpl) GetRoomAvailability(ctx context.Context, roomID uuid.UUID, startDate, endDate time.Time) ([]*DayAvailabilityView, error) {
	if endDate.Before(startDate) {
		return nil, ErrInvalidDateRange
	}

	if _, err := q.rooms.FindRoomByID(ctx, roomID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, err
	}

	return q.readStore.FindEffectiveRange(ctx, roomID, startDate, endDate)
}
