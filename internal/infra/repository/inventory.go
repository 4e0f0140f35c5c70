package repository

import (
	"context"
	"time"

	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

type InventoryRepository struct {
	dbtx    db.DBTX
	queries *db.Queries
}

func NewInventoryRepository(dbtx db.DBTX, queries *db.Queries) *InventoryRepository {
	return &InventoryRepository{dbtx: dbtx, queries: queries}
}

func (r *InventoryRepository) GetForDate(ctx context.Context, roomID uuid.UUID, date time.Time) (*shared.InventoryLevel, error) {
	row, err := r.queries.GetAvailabilityForDate(ctx, r.dbtx, db.GetAvailabilityForDateParams{
		RoomID: roomID,
		Date:   pgconv.DateToPgtype(date),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("availability record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get availability", err)
	}

	return &shared.InventoryLevel{
		AvailableRooms:      row.AvailableRooms,
		EffectivePriceCents: row.EffectivePriceCents,
	}, nil
}

// Decrement takes units from one room-night. The underlying UPDATE carries
// the availability guard, so a no-rows result means either the record is
// missing or the remaining units do not cover the request; both surface as
// insufficient inventory and the caller's transaction rolls back.
func (r *InventoryRepository) Decrement(ctx context.Context, roomID uuid.UUID, date time.Time, quantity int32) (int32, error) {
	remaining, err := r.queries.DecrementAvailableRooms(ctx, r.dbtx, db.AdjustAvailabilityParams{
		RoomID:   roomID,
		Date:     pgconv.DateToPgtype(date),
		Quantity: quantity,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("insufficient rooms available", err, infra.KindInsufficientInventory)
		}
		return 0, infra.WrapRepoErr("failed to decrement availability", err)
	}
	return remaining, nil
}

func (r *InventoryRepository) Increment(ctx context.Context, roomID uuid.UUID, date time.Time, quantity int32) (int32, error) {
	remaining, err := r.queries.IncrementAvailableRooms(ctx, r.dbtx, db.AdjustAvailabilityParams{
		RoomID:   roomID,
		Date:     pgconv.DateToPgtype(date),
		Quantity: quantity,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("availability record not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to increment availability", err)
	}
	return remaining, nil
}

func (r *InventoryRepository) UpsertRange(ctx context.Context, roomID uuid.UUID, startDate, endDate time.Time, availableRooms int32, priceOverrideCents *int64) error {
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		_, err := r.queries.UpsertAvailability(ctx, r.dbtx, db.UpsertAvailabilityParams{
			RoomID:             roomID,
			Date:               pgconv.DateToPgtype(d),
			AvailableRooms:     availableRooms,
			PriceOverrideCents: pgconv.Int64PtrToPgtype(priceOverrideCents),
		})
		if err != nil {
			return infra.WrapRepoErr("failed to upsert availability", err)
		}
	}
	return nil
}
