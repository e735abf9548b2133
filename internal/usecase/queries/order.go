package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"franchise-store/internal/domain/user"
	"franchise-store/internal/infra"
	"franchise-store/internal/pkg/errs"
)

var (
	ErrOrderNotFound = errs.New("order not found")
	ErrOrderAccess   = errs.New("order access denied")
)

// OrderView is the auditable pricing breakdown as stored at confirmation
// time. Receipts and invoices render from this view; recomputing the same
// inputs through the pricing engine must reproduce it exactly.
type OrderView struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	Subtotal          int64     `json:"subtotal"`
	LoyaltyDiscount   int64     `json:"loyalty_discount"`
	DeliveryFee       int64     `json:"delivery_fee"`
	TotalAfterLoyalty int64     `json:"total_after_loyalty"`
	FinalAmount       int64     `json:"final_amount"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

type OrderQueries interface {
	// GetByID enforces ownership: customers see only their own orders,
	// dashboard roles see all.
	GetByID(ctx context.Context, orderID, requesterID uuid.UUID, requesterRole user.Role) (*OrderView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*OrderView, error)
	// GetByIDSystem bypasses the ownership check for read-after-write
	// inside commands.
	GetByIDSystem(ctx context.Context, orderID uuid.UUID) (*OrderView, error)
}

type OrderReadStore interface {
	FindByID(ctx context.Context, orderID uuid.UUID) (*OrderView, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	readStore OrderReadStore
}

func NewOrderQueries(readStore OrderReadStore) OrderQueries {
	return &orderQueriesImpl{
		readStore: readStore,
	}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, orderID, requesterID uuid.UUID, requesterRole user.Role) (*OrderView, error) {
	view, err := q.GetByIDSystem(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if view.UserID != requesterID && !requesterRole.CanEnterDashboard() {
		return nil, ErrOrderAccess
	}

	return view, nil
}

func (q *orderQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*OrderView, error) {
	views, err := q.readStore.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *orderQueriesImpl) GetByIDSystem(ctx context.Context, orderID uuid.UUID) (*OrderView, error) {
	view, err := q.readStore.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return view, nil
}
