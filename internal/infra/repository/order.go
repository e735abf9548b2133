package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"franchise-store/internal/domain/pricing"
	"franchise-store/internal/infra"
	"franchise-store/internal/usecase/commands"
	"franchise-store/internal/usecase/queries"
)

type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, tx pgx.Tx, order *commands.NewOrder) (uuid.UUID, error) {
	orderID := uuid.New()
	b := order.Breakdown

	_, err := tx.Exec(ctx, `
		INSERT INTO orders (
			id, user_id, subtotal, loyalty_discount, delivery_fee,
			total_after_loyalty, final_amount, status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
	`, orderID, order.UserID, b.Subtotal, b.LoyaltyDiscount, b.DeliveryFee,
		b.TotalAfterLoyalty, b.FinalAmount, order.Status)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err)
	}

	return orderID, nil
}

func (r *OrderRepository) FindForUpdate(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) (*queries.OrderView, error) {
	var view queries.OrderView
	err := tx.QueryRow(ctx, `
		SELECT id, user_id, subtotal, loyalty_discount, delivery_fee,
			total_after_loyalty, final_amount, status, created_at
		FROM orders
		WHERE id = $1
		FOR UPDATE
	`, orderID).Scan(
		&view.ID,
		&view.UserID,
		&view.Subtotal,
		&view.LoyaltyDiscount,
		&view.DeliveryFee,
		&view.TotalAfterLoyalty,
		&view.FinalAmount,
		&view.Status,
		&view.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}

	return &view, nil
}

func (r *OrderRepository) UpdateBreakdown(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, breakdown pricing.Result) error {
	_, err := tx.Exec(ctx, `
		UPDATE orders
		SET delivery_fee = $2,
			total_after_loyalty = $3,
			final_amount = $4,
			updated_at = now()
		WHERE id = $1
	`, orderID, breakdown.DeliveryFee, breakdown.TotalAfterLoyalty, breakdown.FinalAmount)
	if err != nil {
		return infra.WrapRepoErr("failed to update order breakdown", err)
	}
	return nil
}
