package repository

import (
	"context"

	"staybook/internal/infra"
	"staybook/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct {
	dbtx    db.DBTX
	queries *db.Queries
}

func NewUserRepository(dbtx db.DBTX, queries *db.Queries) *UserRepository {
	return &UserRepository{dbtx: dbtx, queries: queries}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	if err := r.queries.UpdateLastLogin(ctx, r.dbtx, userID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
