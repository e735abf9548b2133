package pricing

import (
	"errors"
	"fmt"
)

// Fixed business constants. One loyalty point always buys exactly one
// currency unit of discount, and a single order can never discount more
// than 30% of its subtotal. Deliberately not configuration.
const (
	MaxDiscountPercent = 30
	PointValue         = 1
)

var (
	ErrNegativeAmount     = errors.New("amounts must not be negative")
	ErrNegativePoints     = errors.New("requested points must not be negative")
	ErrInsufficientPoints = errors.New("insufficient loyalty points")
)

// DiscountCapError carries the violated limit so the caller can show the
// customer how many points this order actually admits.
type DiscountCapError struct {
	Max int64
}

func (e *DiscountCapError) Error() string {
	return fmt.Sprintf("requested points exceed the discount cap of %d", e.Max)
}

// MaxDiscount is the largest loyalty discount a subtotal admits:
// floor(subtotal * 0.30), computed in integer arithmetic.
func MaxDiscount(subtotal int64) int64 {
	return subtotal * MaxDiscountPercent / 100
}

// Compute validates a redemption request against the account snapshot and
// produces the pricing breakdown. It is pure and side-effect-free: it
// never debits the ledger. The transactional commit step calls it first
// and can assume validity; receipts recompute it afterwards and must get
// identical numbers.
func Compute(in Input, account Account) (Result, error) {
	if in.Subtotal < 0 || in.DeliveryFee < 0 {
		return Result{}, ErrNegativeAmount
	}
	if in.RequestedPoints < 0 {
		return Result{}, ErrNegativePoints
	}
	if in.RequestedPoints+account.ReservedPoints > account.AvailablePoints {
		return Result{}, ErrInsufficientPoints
	}

	maxAllowed := MaxDiscount(in.Subtotal)
	if in.RequestedPoints > maxAllowed {
		return Result{}, &DiscountCapError{Max: maxAllowed}
	}

	discount := in.RequestedPoints * PointValue
	totalAfterLoyalty := in.Subtotal - discount

	return Result{
		Subtotal:          in.Subtotal,
		LoyaltyDiscount:   discount,
		DeliveryFee:       in.DeliveryFee,
		TotalAfterLoyalty: totalAfterLoyalty,
		FinalAmount:       totalAfterLoyalty + in.DeliveryFee,
	}, nil
}
