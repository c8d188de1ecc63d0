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

// bcrypt hash of "password123", precomputed so fixtures stay fast
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

const TestPassword = "password123"

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, name, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, email, TestPasswordHash, "Test User", role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestHomestay(t *testing.T, db DBLike, hostID uuid.UUID, name, city string) uuid.UUID {
	t.Helper()

	homestayID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO homestays (id, host_id, name, description, address, city) VALUES ($1, $2, $3, '', $4, $5)",
		homestayID, hostID, name, "12 Test Street", city)
	require.NoError(t, err)

	return homestayID
}

func CreateTestRoom(t *testing.T, db DBLike, homestayID uuid.UUID, roomType, name string, pricePerNight int64) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO rooms (id, homestay_id, type, name, price_per_night, max_guests, status) VALUES ($1, $2, $3, $4, $5, 2, 'available')",
		roomID, homestayID, roomType, name, pricePerNight)
	require.NoError(t, err)

	return roomID
}

func CreateTestCoupon(t *testing.T, db DBLike, code, discountType string, discountValue int64, minOrder *int64) uuid.UUID {
	t.Helper()

	couponID := uuid.New()
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := db.Exec(ctx,
		"INSERT INTO coupons (id, code, name, discount_type, discount_value, min_order, starts_at, ends_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
		couponID, code, "Test Coupon "+code, discountType, discountValue, minOrder,
		now.Add(-24*time.Hour), now.Add(30*24*time.Hour))
	require.NoError(t, err)

	return couponID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables so each subtest starts from a clean slate
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
