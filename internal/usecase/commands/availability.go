package commands

import (
	"context"
	"log/slog"
	"time"

	"staybook/internal/infra"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidAvailability = errs.New("invalid availability input")
	ErrNotAuthorized       = errs.New("not authorized to manage availability")
)

type SetAvailabilityInput struct {
	RoomID             uuid.UUID
	StartDate          time.Time
	EndDate            time.Time
	AvailableRooms     int32
	PriceOverrideCents *int64
}

type AvailabilityCommands interface {
	SetAvailabilityRange(ctx context.Context, actor shared.Actor, input SetAvailabilityInput) error
}

type availabilityCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewAvailabilityCommands(uow shared.UnitOfWork) AvailabilityCommands {
	return &availabilityCommandsImpl{uow: uow}
}

// SetAvailabilityRange seeds or overwrites the ledger for every date in the
// span. Nights already sold are overwritten too; callers are expected to
// know the current sold count when reopening inventory.
func (c *availabilityCommandsImpl) SetAvailabilityRange(ctx context.Context, actor shared.Actor, input SetAvailabilityInput) error {
	if !actor.Role.CanManageBookings() {
		return ErrNotAuthorized
	}
	if input.EndDate.Before(input.StartDate) || input.AvailableRooms < 0 {
		return ErrInvalidAvailability
	}
	// The ledger requires a strictly positive override; a free night is
	// expressed by omitting the override, not by zeroing it.
	if input.PriceOverrideCents != nil && *input.PriceOverrideCents <= 0 {
		return ErrInvalidAvailability
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().RoomByID(ctx, input.RoomID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRoomNotFound)
			}
			return err
		}

		return tx.Inventory().UpsertRange(ctx,
			input.RoomID, input.StartDate, input.EndDate,
			input.AvailableRooms, input.PriceOverrideCents)
	})
	if err != nil {
		return err
	}

	slog.Info("availability updated",
		"room_id", input.RoomID,
		"start_date", input.StartDate.Format(time.DateOnly),
		"end_date", input.EndDate.Format(time.DateOnly))
	return nil
}
