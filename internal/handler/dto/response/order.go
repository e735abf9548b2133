package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"franchise-store/internal/domain/pricing"
	"franchise-store/internal/usecase/queries"
)

type QuoteResponse struct {
	Subtotal          int64 `json:"subtotal"`
	LoyaltyDiscount   int64 `json:"loyalty_discount"`
	DeliveryFee       int64 `json:"delivery_fee"`
	TotalAfterLoyalty int64 `json:"total_after_loyalty"`
	FinalAmount       int64 `json:"final_amount"`
}

type OrderResponse struct {
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

func NewQuoteResponse(result *pricing.Result) QuoteResponse {
	var resp QuoteResponse
	_ = copier.Copy(&resp, result)
	return resp
}

func NewOrderResponse(view *queries.OrderView) OrderResponse {
	var resp OrderResponse
	_ = copier.Copy(&resp, view)
	return resp
}

func NewOrderListResponse(views []*queries.OrderView) []OrderResponse {
	resps := make([]OrderResponse, 0, len(views))
	for _, view := range views {
		resps = append(resps, NewOrderResponse(view))
	}
	return resps
}
