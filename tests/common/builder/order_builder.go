//go:build unit || e2e

package builder

import (
	"time"

	"franchise-store/internal/domain/pricing"
	reqdto "franchise-store/internal/handler/dto/request"
	"franchise-store/internal/usecase/queries"

	"github.com/google/uuid"
)

// OrderBuilder defaults to the canonical worked example: 1000 subtotal,
// 250 points, 50 delivery fee.
type OrderBuilder struct {
	UserID          uuid.UUID
	Subtotal        int64
	RequestedPoints int64
	DeliveryFee     int64
	AvailablePoints int64
	ReservedPoints  int64
	Status          string
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		UserID:          uuid.New(),
		Subtotal:        1000,
		RequestedPoints: 250,
		DeliveryFee:     50,
		AvailablePoints: 500,
		ReservedPoints:  0,
		Status:          "confirmed",
	}
}

func (o *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(o)
	return o
}

func (o *OrderBuilder) BuildDTO() reqdto.CreateOrderRequest {
	return reqdto.CreateOrderRequest{
		Subtotal:        o.Subtotal,
		RequestedPoints: o.RequestedPoints,
		DeliveryFee:     o.DeliveryFee,
	}
}

func (o *OrderBuilder) BuildAccount() pricing.Account {
	return pricing.Account{
		UserID:          o.UserID,
		AvailablePoints: o.AvailablePoints,
		ReservedPoints:  o.ReservedPoints,
	}
}

// BuildResult computes the breakdown the engine should return for the
// builder's inputs, assuming they are valid.
func (o *OrderBuilder) BuildResult() pricing.Result {
	totalAfterLoyalty := o.Subtotal - o.RequestedPoints
	return pricing.Result{
		Subtotal:          o.Subtotal,
		LoyaltyDiscount:   o.RequestedPoints,
		DeliveryFee:       o.DeliveryFee,
		TotalAfterLoyalty: totalAfterLoyalty,
		FinalAmount:       totalAfterLoyalty + o.DeliveryFee,
	}
}

func (o *OrderBuilder) BuildView() *queries.OrderView {
	r := o.BuildResult()
	return &queries.OrderView{
		ID:                uuid.New(),
		UserID:            o.UserID,
		Subtotal:          r.Subtotal,
		LoyaltyDiscount:   r.LoyaltyDiscount,
		DeliveryFee:       r.DeliveryFee,
		TotalAfterLoyalty: r.TotalAfterLoyalty,
		FinalAmount:       r.FinalAmount,
		Status:            o.Status,
		CreatedAt:         time.Now(),
	}
}

func (o *OrderBuilder) WithUserID(id uuid.UUID) *OrderBuilder {
	o.UserID = id
	return o
}

func (o *OrderBuilder) WithSubtotal(v int64) *OrderBuilder {
	o.Subtotal = v
	return o
}

func (o *OrderBuilder) WithRequestedPoints(v int64) *OrderBuilder {
	o.RequestedPoints = v
	return o
}

func (o *OrderBuilder) WithDeliveryFee(v int64) *OrderBuilder {
	o.DeliveryFee = v
	return o
}

func (o *OrderBuilder) WithAvailablePoints(v int64) *OrderBuilder {
	o.AvailablePoints = v
	return o
}

func (o *OrderBuilder) WithReservedPoints(v int64) *OrderBuilder {
	o.ReservedPoints = v
	return o
}

func (o *OrderBuilder) WithStatus(status string) *OrderBuilder {
	o.Status = status
	return o
}
