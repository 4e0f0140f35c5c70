package shared

import (
	"context"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/user"

	"github.com/google/uuid"
)

// Actor identifies the authenticated caller for authorization decisions.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

// CanActOn reports whether the actor may read or mutate a booking owned by
// ownerID. Owners always may; managers and admins may act on any booking.
func (a Actor) CanActOn(ownerID uuid.UUID) bool {
	return a.ID == ownerID || a.Role.CanManageBookings()
}

// InventoryLevel is one room-night as the coordinator sees it: remaining
// units plus the price that would be charged for that night.
type InventoryLevel struct {
	AvailableRooms      int32
	EffectivePriceCents int64
}

// InventoryRepository is the ledger contract. Decrement must be conditional
// at the store level: it succeeds only while available units cover the
// requested quantity, and the check-and-update is a single indivisible step.
type InventoryRepository interface {
	GetForDate(ctx context.Context, roomID uuid.UUID, date time.Time) (*InventoryLevel, error)
	Decrement(ctx context.Context, roomID uuid.UUID, date time.Time, quantity int32) (int32, error)
	Increment(ctx context.Context, roomID uuid.UUID, date time.Time, quantity int32) (int32, error)
	UpsertRange(ctx context.Context, roomID uuid.UUID, startDate, endDate time.Time, availableRooms int32, priceOverrideCents *int64) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	// Cancel performs the guarded pending/confirmed -> cancelled transition.
	Cancel(ctx context.Context, id uuid.UUID) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

// Minimal snapshots for command-side reads.

type RoomSnapshot struct {
	ID                 uuid.UUID
	HotelID            uuid.UUID
	RoomType           string
	Capacity           int32
	PricePerNightCents int64
	TotalRooms         int32
}

type BookingSnapshot struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	RoomID          uuid.UUID
	CheckInDate     time.Time
	CheckOutDate    time.Time
	NumGuests       int32
	NumRoomsBooked  int32
	TotalPriceCents int64
	Status          booking.Status
	PaymentStatus   booking.PaymentStatus
}

type CommandReads interface {
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	// BookingByIDForUpdate locks the booking row; valid only inside a transaction.
	BookingByIDForUpdate(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
}
