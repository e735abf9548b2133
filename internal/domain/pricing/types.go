package pricing

import (
	"github.com/google/uuid"
)

// All monetary values are integer currency units (the smallest unit), so
// the arithmetic is exact and results are bit-identical for identical
// inputs.

// Input is one pricing request. RequestedPoints is the number of loyalty
// points the customer wants to redeem against the subtotal.
type Input struct {
	Subtotal        int64
	RequestedPoints int64
	DeliveryFee     int64
}

// Account is a read-only snapshot of the customer's loyalty balance.
// ReservedPoints are points already committed to another in-flight order
// and therefore not spendable here.
type Account struct {
	UserID          uuid.UUID
	AvailablePoints int64
	ReservedPoints  int64
}

// Result is the immutable, auditable pricing breakdown. Invariant:
// FinalAmount == Subtotal - LoyaltyDiscount + DeliveryFee, exactly.
type Result struct {
	Subtotal          int64
	LoyaltyDiscount   int64
	DeliveryFee       int64
	TotalAfterLoyalty int64
	FinalAmount       int64
}
