package readstore

import (
	"context"

	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type HotelReadStore struct {
	queries *db.Queries
	db      db.DBTX
}

func NewHotelReadStore(q *db.Queries, dbtx db.DBTX) *HotelReadStore {
	return &HotelReadStore{
		queries: q,
		db:      dbtx,
	}
}

func (r *HotelReadStore) FindAll(ctx context.Context) ([]*queries.HotelView, error) {
	rows, err := r.queries.ListHotels(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotels", err)
	}
	return rowsToHotelViews(rows), nil
}

func (r *HotelReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.HotelView, error) {
	row, err := r.queries.GetHotelByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hotel by ID", err)
	}
	return rowToHotelView(row), nil
}

func (r *HotelReadStore) Search(ctx context.Context, city string, minStarRating *int32) ([]*queries.HotelView, error) {
	var minStar pgtype.Int4
	if minStarRating != nil {
		minStar = pgtype.Int4{Int32: *minStarRating, Valid: true}
	}

	rows, err := r.queries.SearchHotels(ctx, r.db, db.SearchHotelsParams{
		City:          city,
		MinStarRating: minStar,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search hotels", err)
	}
	return rowsToHotelViews(rows), nil
}

func rowsToHotelViews(rows []db.HotelRow) []*queries.HotelView {
	result := make([]*queries.HotelView, len(rows))
	for i, row := range rows {
		result[i] = rowToHotelView(row)
	}
	return result
}

func rowToHotelView(row db.HotelRow) *queries.HotelView {
	return &queries.HotelView{
		ID:          row.ID,
		Name:        row.Name,
		Address:     row.Address,
		City:        row.City,
		State:       row.State,
		Country:     row.Country,
		PostalCode:  pgconv.StringPtrFromPgtype(row.PostalCode),
		Description: pgconv.StringPtrFromPgtype(row.Description),
		StarRating:  row.StarRating,
		ImageURL:    pgconv.StringPtrFromPgtype(row.ImageURL),
		ManagerID:   pgconv.UUIDPtrFromPgtype(row.ManagerID),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
