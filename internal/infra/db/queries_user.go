package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserRow struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	LastLogin    pgtype.Timestamptz
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

const userColumns = `id, username, email, password_hash, role, is_active,
       last_login, created_at, updated_at`

const getUserByEmail = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1
`

func (q *Queries) GetUserByEmail(ctx context.Context, db DBTX, email string) (UserRow, error) {
	var row UserRow
	err := db.QueryRow(ctx, getUserByEmail, email).Scan(
		&row.ID, &row.Username, &row.Email, &row.PasswordHash, &row.Role,
		&row.IsActive, &row.LastLogin, &row.CreatedAt, &row.UpdatedAt,
	)
	return row, err
}

const getUserByID = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1
`

func (q *Queries) GetUserByID(ctx context.Context, db DBTX, id uuid.UUID) (UserRow, error) {
	var row UserRow
	err := db.QueryRow(ctx, getUserByID, id).Scan(
		&row.ID, &row.Username, &row.Email, &row.PasswordHash, &row.Role,
		&row.IsActive, &row.LastLogin, &row.CreatedAt, &row.UpdatedAt,
	)
	return row, err
}

const updateLastLogin = `
UPDATE users
SET last_login = now(), updated_at = now()
WHERE id = $1
`

func (q *Queries) UpdateLastLogin(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, updateLastLogin, id)
	return err
}
