package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"franchise-store/internal/domain/pricing"
	reqdto "franchise-store/internal/handler/dto/request"
	"franchise-store/internal/infra"
	"franchise-store/internal/pkg/clock"
	"franchise-store/internal/pkg/errs"
	"franchise-store/internal/usecase/queries"
)

var (
	ErrLoyaltyAccountNotFound  = errs.New("loyalty account not found")
	ErrOrderNotFound           = errs.New("order not found")
	ErrOrderNotEditable        = errs.New("order can no longer be edited")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// NewOrder is the write model handed to the order repository once pricing
// has been validated.
type NewOrder struct {
	UserID    uuid.UUID
	Breakdown pricing.Result
	Status    string
}

const (
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
)

// LoyaltyReader serves the lock-free pricing preview.
type LoyaltyReader interface {
	FindAccountByUserID(ctx context.Context, userID uuid.UUID) (*pricing.Account, error)
}

// LoyaltyRepository is the transactional side of the ledger. The account
// row is locked for the duration of the confirmation so two concurrent
// checkouts cannot both spend the same points.
type LoyaltyRepository interface {
	FindAccountForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*pricing.Account, error)
	DebitPoints(ctx context.Context, tx pgx.Tx, userID uuid.UUID, points int64) error
	RecordRedemption(ctx context.Context, tx pgx.Tx, userID, orderID uuid.UUID, points int64) error
}

type OrderRepository interface {
	Create(ctx context.Context, tx pgx.Tx, order *NewOrder) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) (*queries.OrderView, error)
	UpdateBreakdown(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, breakdown pricing.Result) error
}

type OrderCommands interface {
	// Quote runs the pricing engine against the live account snapshot
	// without committing anything.
	Quote(ctx context.Context, userID uuid.UUID, req reqdto.CreateOrderRequest) (*pricing.Result, error)
	// Confirm validates and atomically commits the redemption: debit the
	// points, record the loyalty transaction and persist the breakdown.
	Confirm(ctx context.Context, userID uuid.UUID, req reqdto.CreateOrderRequest) (*queries.OrderView, error)
	// AdjustDeliveryFee is the operator override at order confirmation:
	// the breakdown is recomputed with the new fee and the same subtotal
	// and discount, then persisted.
	AdjustDeliveryFee(ctx context.Context, orderID uuid.UUID, newFee int64) (*queries.OrderView, error)
}

type orderCommandsImpl struct {
	orderRepo    OrderRepository
	loyaltyRepo  LoyaltyRepository
	loyaltyRead  LoyaltyReader
	orderQueries queries.OrderQueries
	db           *pgxpool.Pool
	clock        clock.Clock
}

func NewOrderCommands(
	orderRepo OrderRepository,
	loyaltyRepo LoyaltyRepository,
	loyaltyRead LoyaltyReader,
	orderQueries queries.OrderQueries,
	db *pgxpool.Pool,
	clk clock.Clock,
) OrderCommands {
	return &orderCommandsImpl{
		orderRepo:    orderRepo,
		loyaltyRepo:  loyaltyRepo,
		loyaltyRead:  loyaltyRead,
		orderQueries: orderQueries,
		db:           db,
		clock:        clk,
	}
}

func (o *orderCommandsImpl) Quote(ctx context.Context, userID uuid.UUID, req reqdto.CreateOrderRequest) (*pricing.Result, error) {
	account, err := o.loyaltyRead.FindAccountByUserID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLoyaltyAccountNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	result, err := pricing.Compute(req.ToPricingInput(), *account)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (o *orderCommandsImpl) Confirm(ctx context.Context, userID uuid.UUID, req reqdto.CreateOrderRequest) (*queries.OrderView, error) {
	tx, err := o.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errs.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	account, err := o.loyaltyRepo.FindAccountForUpdate(ctx, tx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLoyaltyAccountNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Same arithmetic as Quote, but against the locked snapshot, so the
	// commit below can assume validity.
	result, err := pricing.Compute(req.ToPricingInput(), *account)
	if err != nil {
		return nil, err
	}

	orderID, err := o.orderRepo.Create(ctx, tx, &NewOrder{
		UserID:    userID,
		Breakdown: result,
		Status:    OrderStatusConfirmed,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if result.LoyaltyDiscount > 0 {
		if err := o.loyaltyRepo.DebitPoints(ctx, tx, userID, result.LoyaltyDiscount); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := o.loyaltyRepo.RecordRedemption(ctx, tx, userID, orderID, result.LoyaltyDiscount); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}

	// Read-after-write through the read store for the canonical view.
	return o.orderQueries.GetByIDSystem(ctx, orderID)
}

func (o *orderCommandsImpl) AdjustDeliveryFee(ctx context.Context, orderID uuid.UUID, newFee int64) (*queries.OrderView, error) {
	tx, err := o.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errs.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	current, err := o.orderRepo.FindForUpdate(ctx, tx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if current.Status != OrderStatusConfirmed {
		return nil, ErrOrderNotEditable
	}

	// The points backing this order were debited at confirmation; the
	// snapshot below makes them available to the recomputation so only
	// the fee changes.
	result, err := pricing.Compute(
		pricing.Input{
			Subtotal:        current.Subtotal,
			RequestedPoints: current.LoyaltyDiscount,
			DeliveryFee:     newFee,
		},
		pricing.Account{
			UserID:          current.UserID,
			AvailablePoints: current.LoyaltyDiscount,
		},
	)
	if err != nil {
		return nil, err
	}

	if err := o.orderRepo.UpdateBreakdown(ctx, tx, orderID, result); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}

	return o.orderQueries.GetByIDSystem(ctx, orderID)
}
