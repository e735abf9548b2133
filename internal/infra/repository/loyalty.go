package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"franchise-store/internal/domain/pricing"
	"franchise-store/internal/infra"
)

// LoyaltyRepository owns the ledger rows backing point redemption. Reads
// for pricing previews go through the pool; the confirmation path locks
// the account row inside the caller's transaction.
type LoyaltyRepository struct {
	db *pgxpool.Pool
}

func NewLoyaltyRepository(db *pgxpool.Pool) *LoyaltyRepository {
	return &LoyaltyRepository{db: db}
}

func (r *LoyaltyRepository) FindAccountByUserID(ctx context.Context, userID uuid.UUID) (*pricing.Account, error) {
	return scanAccount(r.db.QueryRow(ctx, `
		SELECT user_id, available_points, reserved_points
		FROM loyalty_accounts
		WHERE user_id = $1
	`, userID))
}

func (r *LoyaltyRepository) FindAccountForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*pricing.Account, error) {
	return scanAccount(tx.QueryRow(ctx, `
		SELECT user_id, available_points, reserved_points
		FROM loyalty_accounts
		WHERE user_id = $1
		FOR UPDATE
	`, userID))
}

func (r *LoyaltyRepository) DebitPoints(ctx context.Context, tx pgx.Tx, userID uuid.UUID, points int64) error {
	tag, err := tx.Exec(ctx, `
		UPDATE loyalty_accounts
		SET available_points = available_points - $2, updated_at = now()
		WHERE user_id = $1 AND available_points >= $2
	`, userID, points)
	if err != nil {
		return infra.WrapRepoErr("failed to debit loyalty points", err)
	}
	if tag.RowsAffected() == 0 {
		// The balance moved between the locked read and this write; the
		// guard in the WHERE clause keeps the ledger non-negative.
		return infra.WrapRepoErr("loyalty balance changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

func (r *LoyaltyRepository) RecordRedemption(ctx context.Context, tx pgx.Tx, userID, orderID uuid.UUID, points int64) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO loyalty_transactions (id, user_id, order_id, points, kind, created_at)
		VALUES ($1, $2, $3, $4, 'redemption', now())
	`, uuid.New(), userID, orderID, points)
	if err != nil {
		return infra.WrapRepoErr("failed to record loyalty redemption", err)
	}
	return nil
}

func scanAccount(row pgx.Row) (*pricing.Account, error) {
	var account pricing.Account
	err := row.Scan(&account.UserID, &account.AvailablePoints, &account.ReservedPoints)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("loyalty account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read loyalty account", err)
	}
	return &account, nil
}
