//go:build unit || e2e

package dbtest

import (
	"context"
	"time"

	"franchise-store/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetDB truncates all mutable tables so each subtest starts clean.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `
		TRUNCATE security_events, loyalty_transactions, orders,
		         loyalty_accounts, profiles, users CASCADE`)
	return err
}

type UserFixture struct {
	ID              uuid.UUID
	Email           string
	Password        string
	Role            string
	IsActive        bool
	IsVerified      bool
	DashboardAccess *bool
	AvailablePoints int64
	ReservedPoints  int64
}

// CreateUser inserts a user with profile and loyalty account in one go.
func CreateUser(pool *pgxpool.Pool, f UserFixture) (uuid.UUID, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.Password == "" {
		f.Password = "password123"
	}

	hash, err := password.HashPassword(f.Password)
	if err != nil {
		return uuid.Nil, err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5)`,
		f.ID, f.Email, hash, f.Role, f.IsActive)
	if err != nil {
		return uuid.Nil, err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO profiles (user_id, role, is_verified, dashboard_access)
		VALUES ($1, $2, $3, $4)`,
		f.ID, f.Role, f.IsVerified, f.DashboardAccess)
	if err != nil {
		return uuid.Nil, err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO loyalty_accounts (user_id, available_points, reserved_points)
		VALUES ($1, $2, $3)`,
		f.ID, f.AvailablePoints, f.ReservedPoints)
	if err != nil {
		return uuid.Nil, err
	}

	return f.ID, nil
}

// CountSecurityEvents returns the number of recorded events of one kind.
func CountSecurityEvents(pool *pgxpool.Pool, kind string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var count int
	err := pool.QueryRow(ctx,
		`SELECT count(*) FROM security_events WHERE kind = $1`, kind).Scan(&count)
	return count, err
}

// AvailablePoints reads the current spendable balance for a user.
func AvailablePoints(pool *pgxpool.Pool, userID uuid.UUID) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var points int64
	err := pool.QueryRow(ctx,
		`SELECT available_points FROM loyalty_accounts WHERE user_id = $1`, userID).Scan(&points)
	return points, err
}
