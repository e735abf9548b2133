package request

import (
	"franchise-store/internal/domain/pricing"
)

// CreateOrderRequest covers both the pricing preview and the
// confirmation. Amounts are integer currency units; gin validation keeps
// them non-negative before the pricing engine re-checks.
type CreateOrderRequest struct {
	Subtotal        int64 `json:"subtotal" binding:"min=0"`
	RequestedPoints int64 `json:"requested_points" binding:"min=0"`
	DeliveryFee     int64 `json:"delivery_fee" binding:"min=0"`
}

func (r CreateOrderRequest) ToPricingInput() pricing.Input {
	return pricing.Input{
		Subtotal:        r.Subtotal,
		RequestedPoints: r.RequestedPoints,
		DeliveryFee:     r.DeliveryFee,
	}
}

type AdjustDeliveryFeeRequest struct {
	DeliveryFee int64 `json:"delivery_fee" binding:"min=0"`
}
