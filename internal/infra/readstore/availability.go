package readstore

import (
	"context"
	"time"

	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityReadStore struct {
	queries *db.Queries
	db      db.DBTX
}

func NewAvailabilityReadStore(q *db.Queries, dbtx db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		queries: q,
		db:      dbtx,
	}
}

func (r *AvailabilityReadStore) FindEffectiveRange(ctx context.Context, roomID uuid.UUID, startDate, endDate time.Time) ([]*queries.DayAvailabilityView, error) {
	rows, err := r.queries.GetEffectiveAvailabilityRange(ctx, r.db, db.GetEffectiveAvailabilityRangeParams{
		RoomID:    roomID,
		StartDate: pgconv.DateToPgtype(startDate),
		EndDate:   pgconv.DateToPgtype(endDate),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find availability range", err)
	}

	result := make([]*queries.DayAvailabilityView, len(rows))
	for i, row := range rows {
		result[i] = &queries.DayAvailabilityView{
			Date:           pgconv.DateFromPgtype(row.Date),
			AvailableRooms: row.AvailableRooms,
			PriceCents:     row.EffectivePriceCents,
		}
	}

	return result, nil
}
