package readstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"franchise-store/internal/infra"
	"franchise-store/internal/usecase/queries"
)

const orderViewColumns = `
	id, user_id, subtotal, loyalty_discount, delivery_fee,
	total_after_loyalty, final_amount, status, created_at
`

type OrderReadStore struct {
	db *pgxpool.Pool
}

func NewOrderReadStore(db *pgxpool.Pool) *OrderReadStore {
	return &OrderReadStore{db: db}
}

func (r *OrderReadStore) FindByID(ctx context.Context, orderID uuid.UUID) (*queries.OrderView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE id = $1
	`, orderID)

	view, err := scanOrderView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}

	return view, nil
}

func (r *OrderReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.OrderView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	views := make([]*queries.OrderView, 0, 16)
	for rows.Next() {
		view, err := scanOrderView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order rows", err)
	}

	return views, nil
}

func scanOrderView(row pgx.Row) (*queries.OrderView, error) {
	var view queries.OrderView
	err := row.Scan(
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
		return nil, err
	}
	return &view, nil
}
