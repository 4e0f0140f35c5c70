//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"staybook/internal/domain/user"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAvailabilityRange(t *testing.T) {
	ctx := context.Background()
	manager := shared.Actor{ID: uuid.New(), Role: user.RoleHotelManager}

	t.Run("writes a ledger record for every date in the span inclusive", func(t *testing.T) {
		uow := newFakeUoW()
		room := seedStandardRoom(uow)

		err := commands.NewAvailabilityCommands(uow).SetAvailabilityRange(ctx, manager, commands.SetAvailabilityInput{
			RoomID:         room.ID,
			StartDate:      date(2026, 9, 1),
			EndDate:        date(2026, 9, 3),
			AvailableRooms: 4,
		})
		require.NoError(t, err)

		for _, d := range []time.Time{date(2026, 9, 1), date(2026, 9, 2), date(2026, 9, 3)} {
			avail, ok := uow.availableRooms(room.ID, d)
			require.True(t, ok, "expected a record for %s", d.Format(time.DateOnly))
			assert.Equal(t, int32(4), avail)

			// No override: the room's base rate applies.
			price, _ := uow.priceFor(room.ID, d)
			assert.Equal(t, room.PricePerNightCents, price)
		}
	})

	t.Run("price override replaces the base rate", func(t *testing.T) {
		uow := newFakeUoW()
		room := seedStandardRoom(uow)

		override := int64(15000)
		err := commands.NewAvailabilityCommands(uow).SetAvailabilityRange(ctx, manager, commands.SetAvailabilityInput{
			RoomID:             room.ID,
			StartDate:          date(2026, 9, 1),
			EndDate:            date(2026, 9, 1),
			AvailableRooms:     4,
			PriceOverrideCents: &override,
		})
		require.NoError(t, err)

		price, _ := uow.priceFor(room.ID, date(2026, 9, 1))
		assert.Equal(t, override, price)
	})

	t.Run("overwrites existing records including sold counts", func(t *testing.T) {
		uow := newFakeUoW()
		room := seedStandardRoom(uow)
		uow.seedInventory(room.ID, date(2026, 9, 1), 1, 10000)

		err := commands.NewAvailabilityCommands(uow).SetAvailabilityRange(ctx, manager, commands.SetAvailabilityInput{
			RoomID:         room.ID,
			StartDate:      date(2026, 9, 1),
			EndDate:        date(2026, 9, 1),
			AvailableRooms: 5,
		})
		require.NoError(t, err)

		avail, _ := uow.availableRooms(room.ID, date(2026, 9, 1))
		assert.Equal(t, int32(5), avail)
	})

	t.Run("guests are not authorized", func(t *testing.T) {
		uow := newFakeUoW()
		room := seedStandardRoom(uow)

		err := commands.NewAvailabilityCommands(uow).SetAvailabilityRange(ctx, guestActor(), commands.SetAvailabilityInput{
			RoomID:         room.ID,
			StartDate:      date(2026, 9, 1),
			EndDate:        date(2026, 9, 1),
			AvailableRooms: 4,
		})
		require.ErrorIs(t, err, commands.ErrNotAuthorized)
	})

	t.Run("end date before start date is rejected", func(t *testing.T) {
		uow := newFakeUoW()
		room := seedStandardRoom(uow)

		err := commands.NewAvailabilityCommands(uow).SetAvailabilityRange(ctx, manager, commands.SetAvailabilityInput{
			RoomID:         room.ID,
			StartDate:      date(2026, 9, 3),
			EndDate:        date(2026, 9, 1),
			AvailableRooms: 4,
		})
		require.ErrorIs(t, err, commands.ErrInvalidAvailability)
	})

	t.Run("negative counts and prices are rejected", func(t *testing.T) {
		uow := newFakeUoW()
		room := seedStandardRoom(uow)
		cmds := commands.NewAvailabilityCommands(uow)

		err := cmds.SetAvailabilityRange(ctx, manager, commands.SetAvailabilityInput{
			RoomID:         room.ID,
			StartDate:      date(2026, 9, 1),
			EndDate:        date(2026, 9, 1),
			AvailableRooms: -1,
		})
		require.ErrorIs(t, err, commands.ErrInvalidAvailability)

		// Zero included: the ledger only accepts strictly positive overrides.
		for _, cents := range []int64{-100, 0} {
			badPrice := cents
			err = cmds.SetAvailabilityRange(ctx, manager, commands.SetAvailabilityInput{
				RoomID:             room.ID,
				StartDate:          date(2026, 9, 1),
				EndDate:            date(2026, 9, 1),
				AvailableRooms:     4,
				PriceOverrideCents: &badPrice,
			})
			require.ErrorIs(t, err, commands.ErrInvalidAvailability)
		}
	})

	t.Run("unknown room", func(t *testing.T) {
		uow := newFakeUoW()

		err := commands.NewAvailabilityCommands(uow).SetAvailabilityRange(ctx, manager, commands.SetAvailabilityInput{
			RoomID:         uuid.New(),
			StartDate:      date(2026, 9, 1),
			EndDate:        date(2026, 9, 1),
			AvailableRooms: 4,
		})
		require.ErrorIs(t, err, commands.ErrRoomNotFound)
	})
}
