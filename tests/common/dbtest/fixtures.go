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

// InsertPendingBooking stores a PENDING booking directly, bypassing dispatch.
func InsertPendingBooking(t *testing.T, db DBLike, customerID uuid.UUID, category string, createdAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO bookings (id, customer_id, service_category, address_line, latitude, longitude, estimated_cost, created_at, updated_at)
		VALUES ($1, $2, $3, '1-9-1 Marunouchi', 35.6812, 139.7671, 12000, $4, $4)`,
		id, customerID, category, createdAt)
	require.NoError(t, err)
	return id
}

func BookingStatus(t *testing.T, db DBLike, id uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM bookings WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)
	return status
}

// CountRequests counts the booking's requests in the given status.
func CountRequests(t *testing.T, db DBLike, bookingID uuid.UUID, status string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM booking_requests WHERE booking_id = $1 AND status = $2", bookingID, status).Scan(&n)
	require.NoError(t, err)
	return n
}

// AgeRequests moves the booking's requests back in time so a sweep treats them as stale.
func AgeRequests(t *testing.T, db DBLike, bookingID uuid.UUID, by time.Duration) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE booking_requests SET created_at = created_at - make_interval(secs => $2) WHERE booking_id = $1",
		bookingID, by.Seconds())
	require.NoError(t, err)
}

func CountJobs(t *testing.T, db DBLike, kind string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE kind = $1", kind).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except goose's version table
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
