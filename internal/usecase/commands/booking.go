package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/infra"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/errs"
	"staybook/internal/pkg/metrics"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound          = errs.New("room not found")
	ErrNoAvailabilityRecord  = errs.New("no availability record for requested date")
	ErrInsufficientInventory = errs.New("insufficient rooms available")
	ErrBookingNotFound       = errs.New("booking not found")
	ErrBookingNotCancellable = errs.New("booking is not cancellable")
	ErrBookingAccessDenied   = errs.New("booking access denied")
	ErrCapacityExceeded      = errs.New("room capacity exceeded")
	ErrInvalidStay           = errs.New("invalid stay range")
	ErrDomainValidation      = errs.New("domain validation error")
	ErrInvalidStatus         = errs.New("invalid booking status")
)

type ReserveBookingInput struct {
	RoomID          uuid.UUID
	CheckInDate     time.Time
	CheckOutDate    time.Time
	NumGuests       int32
	NumRoomsBooked  int32
	SpecialRequests string
}

type BookingCommands interface {
	Reserve(ctx context.Context, actor shared.Actor, input ReserveBookingInput) (*queries.BookingView, error)
	Cancel(ctx context.Context, actor shared.Actor, bookingID uuid.UUID) error
	UpdateStatus(ctx context.Context, actor shared.Actor, bookingID uuid.UUID, status string) error
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, bookingQueries queries.BookingQueries, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		clock:          clk,
	}
}

// Reserve books a room for every night of the stay. Each night is taken
// from the ledger with a conditional decrement inside one transaction, so a
// failure on any night rolls back the nights already taken. The total price
// is accumulated from the per-night effective prices observed in the same
// transaction and frozen on the booking record.
func (c *bookingCommandsImpl) Reserve(ctx context.Context, actor shared.Actor, input ReserveBookingInput) (*queries.BookingView, error) {
	stay, err := booking.NewStayRange(input.CheckInDate, input.CheckOutDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStay)
	}

	now := c.clock.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if stay.CheckIn().Before(today) {
		return nil, ErrInvalidStay
	}

	var bookingID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		room, err := tx.Reads().RoomByID(ctx, input.RoomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRoomNotFound)
			}
			return err
		}

		spec := booking.RoomSpec{ID: room.ID, Capacity: room.Capacity}
		if err := booking.ValidateOccupancy(spec, input.NumGuests, input.NumRoomsBooked); err != nil {
			if errors.Is(err, booking.ErrCapacityExceeded) {
				return errs.Mark(err, ErrCapacityExceeded)
			}
			return errs.Mark(err, ErrDomainValidation)
		}

		total := booking.Money{}
		for _, date := range stay.Dates() {
			level, err := tx.Inventory().GetForDate(ctx, room.ID, date)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return errs.Mark(errs.Wrap(err, date.Format(time.DateOnly)), ErrNoAvailabilityRecord)
				}
				return err
			}

			nightly, err := booking.NewMoney(level.EffectivePriceCents)
			if err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
			total = total.Add(nightly.MultiplyBy(input.NumRoomsBooked))

			if _, err := tx.Inventory().Decrement(ctx, room.ID, date, input.NumRoomsBooked); err != nil {
				if infra.IsKind(err, infra.KindInsufficientInventory) {
					metrics.ReservationRejections.WithLabelValues("insufficient_inventory").Inc()
					return errs.Mark(errs.Wrap(err, date.Format(time.DateOnly)), ErrInsufficientInventory)
				}
				return err
			}
		}

		entity, err := booking.NewBooking(
			spec,
			actor.ID,
			stay,
			input.NumGuests,
			input.NumRoomsBooked,
			total,
			booking.NewSpecialRequests(input.SpecialRequests),
		)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		bookingID, err = tx.Bookings().Create(ctx, entity)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.BookingsTotal.WithLabelValues("reserved").Inc()
	metrics.RoomNightsReserved.Add(float64(stay.Nights()) * float64(input.NumRoomsBooked))

	slog.Info("booking reserved",
		"booking_id", bookingID,
		"room_id", input.RoomID,
		"nights", stay.Nights(),
		"rooms", input.NumRoomsBooked)

	return c.bookingQueries.GetByID(ctx, actor, bookingID)
}

// Cancel releases every booked room-night back to the ledger and flips the
// booking to cancelled, all in one transaction. The booking row is locked
// first so two concurrent cancellations cannot both compensate.
func (c *bookingCommandsImpl) Cancel(ctx context.Context, actor shared.Actor, bookingID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByIDForUpdate(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrBookingNotFound)
			}
			return err
		}

		if !actor.CanActOn(snap.UserID) {
			return ErrBookingAccessDenied
		}
		if !snap.Status.IsCancellable() {
			return ErrBookingNotCancellable
		}

		stay, err := booking.NewStayRange(snap.CheckInDate, snap.CheckOutDate)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		for _, date := range stay.Dates() {
			if _, err := tx.Inventory().Increment(ctx, snap.RoomID, date, snap.NumRoomsBooked); err != nil {
				return err
			}
		}

		if err := tx.Bookings().Cancel(ctx, bookingID); err != nil {
			if infra.IsKind(err, infra.KindStateConflict) {
				return errs.Mark(err, ErrBookingNotCancellable)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	metrics.BookingsTotal.WithLabelValues("cancelled").Inc()
	slog.Info("booking cancelled", "booking_id", bookingID, "actor_id", actor.ID)
	return nil
}

// UpdateStatus applies an administrative transition. Cancellation is not
// reachable through this path; it must go through Cancel so the ledger
// compensation is never skipped.
func (c *bookingCommandsImpl) UpdateStatus(ctx context.Context, actor shared.Actor, bookingID uuid.UUID, status string) error {
	next := booking.Status(status)
	if !next.IsValid() {
		return ErrInvalidStatus
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByIDForUpdate(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrBookingNotFound)
			}
			return err
		}

		if !actor.Role.CanManageBookings() {
			return ErrBookingAccessDenied
		}

		entity := reconstructFromSnapshot(snap)
		if err := entity.TransitionStatus(next); err != nil {
			return errs.Mark(err, ErrInvalidStatus)
		}

		return tx.Bookings().UpdateStatus(ctx, bookingID, entity.Status())
	})
}

func reconstructFromSnapshot(snap *shared.BookingSnapshot) *booking.Booking {
	stay, _ := booking.NewStayRange(snap.CheckInDate, snap.CheckOutDate)
	total, _ := booking.NewMoney(snap.TotalPriceCents)
	return booking.ReconstructBooking(
		snap.ID, snap.UserID, snap.RoomID,
		stay,
		snap.NumGuests, snap.NumRoomsBooked,
		total,
		snap.Status, snap.PaymentStatus,
		booking.NewSpecialRequests(""),
		time.Time{}, time.Time{},
	)
}
