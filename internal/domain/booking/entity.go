package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidGuestCount   = errors.New("number of guests must be positive")
	ErrInvalidRoomCount    = errors.New("number of rooms booked must be positive")
	ErrCapacityExceeded    = errors.New("number of guests exceeds room capacity")
	ErrNotCancellable      = errors.New("booking is not in a cancellable state")
	ErrInvalidStatusChange = errors.New("invalid booking status transition")
)

// RoomSpec is the catalog snapshot the booking is priced and validated
// against. Capacity is per room; a multi-room booking multiplies it.
type RoomSpec struct {
	ID       uuid.UUID
	Capacity int32
}

// ValidateOccupancy checks the party against the room before any inventory
// is touched: counts must be positive and the booked rooms together must
// hold every guest.
func ValidateOccupancy(room RoomSpec, numGuests, numRoomsBooked int32) error {
	if numGuests <= 0 {
		return ErrInvalidGuestCount
	}
	if numRoomsBooked <= 0 {
		return ErrInvalidRoomCount
	}
	if numGuests > room.Capacity*numRoomsBooked {
		return ErrCapacityExceeded
	}
	return nil
}

type Booking struct {
	id              uuid.UUID
	userID          uuid.UUID
	roomID          uuid.UUID
	stay            StayRange
	numGuests       int32
	numRoomsBooked  int32
	totalPrice      Money
	status          Status
	paymentStatus   PaymentStatus
	specialRequests SpecialRequests
	createdAt       time.Time
	updatedAt       time.Time
}

// NewBooking builds a booking that has already secured its inventory.
// The ledger decrement happens before this record exists, so the booking is
// confirmed immediately rather than held pending.
func NewBooking(
	room RoomSpec,
	userID uuid.UUID,
	stay StayRange,
	numGuests, numRoomsBooked int32,
	totalPrice Money,
	specialRequests SpecialRequests,
) (*Booking, error) {
	if err := ValidateOccupancy(room, numGuests, numRoomsBooked); err != nil {
		return nil, err
	}

	return &Booking{
		id:              uuid.New(),
		userID:          userID,
		roomID:          room.ID,
		stay:            stay,
		numGuests:       numGuests,
		numRoomsBooked:  numRoomsBooked,
		totalPrice:      totalPrice,
		status:          StatusConfirmed,
		paymentStatus:   PaymentPending,
		specialRequests: specialRequests,
	}, nil
}

func ReconstructBooking(
	id, userID, roomID uuid.UUID,
	stay StayRange,
	numGuests, numRoomsBooked int32,
	totalPrice Money,
	status Status,
	paymentStatus PaymentStatus,
	specialRequests SpecialRequests,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		userID:          userID,
		roomID:          roomID,
		stay:            stay,
		numGuests:       numGuests,
		numRoomsBooked:  numRoomsBooked,
		totalPrice:      totalPrice,
		status:          status,
		paymentStatus:   paymentStatus,
		specialRequests: specialRequests,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Cancel transitions the booking to cancelled. Only pending or confirmed
// bookings may be cancelled; the caller is responsible for returning the
// booked room-nights to the ledger in the same transaction.
func (b *Booking) Cancel() error {
	if !b.status.IsCancellable() {
		return ErrNotCancellable
	}
	b.status = StatusCancelled
	return nil
}

// TransitionStatus applies an administrative status change. Terminal states
// cannot be left through this path.
func (b *Booking) TransitionStatus(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatusChange
	}
	if b.status == StatusCancelled || b.status == StatusCompleted {
		return ErrInvalidStatusChange
	}
	if next == StatusCancelled {
		// Cancellation must go through Cancel so ledger compensation is not skipped.
		return ErrInvalidStatusChange
	}
	b.status = next
	return nil
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) ID() uuid.UUID                    { return b.id }
func (b *Booking) UserID() uuid.UUID                { return b.userID }
func (b *Booking) RoomID() uuid.UUID                { return b.roomID }
func (b *Booking) Stay() StayRange                  { return b.stay }
func (b *Booking) NumGuests() int32                 { return b.numGuests }
func (b *Booking) NumRoomsBooked() int32            { return b.numRoomsBooked }
func (b *Booking) TotalPrice() Money                { return b.totalPrice }
func (b *Booking) Status() Status                   { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus     { return b.paymentStatus }
func (b *Booking) SpecialRequests() SpecialRequests { return b.specialRequests }
func (b *Booking) CreatedAt() time.Time             { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time             { return b.updatedAt }
