//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	username := strings.SplitN(email, "@", 2)[0] + "_" + userID.String()[:8]

	ctx := context.Background()
	tag, err := db.Exec(ctx,
		`INSERT INTO users (id, username, email, password_hash, role, is_active)
		 VALUES ($1, $2, $3, $4, $5, true)
		 ON CONFLICT (email) DO NOTHING`,
		userID, username, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestHotel(t *testing.T, db DBLike, name, city string) uuid.UUID {
	t.Helper()

	hotelID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO hotels (id, name, address, city, state, country, star_rating)
		 VALUES ($1, $2, '1 Quay Street', $3, 'WA', 'USA', 4)`,
		hotelID, name, city)
	require.NoError(t, err)

	return hotelID
}

func CreateTestRoom(t *testing.T, db DBLike, hotelID uuid.UUID, capacity int32, pricePerNightCents int64, totalRooms int32) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO rooms (id, hotel_id, room_type, capacity, price_per_night_cents, total_rooms)
		 VALUES ($1, $2, 'Deluxe Double', $3, $4, $5)`,
		roomID, hotelID, capacity, pricePerNightCents, totalRooms)
	require.NoError(t, err)

	return roomID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
