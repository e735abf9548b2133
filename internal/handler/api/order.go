package api

import (
	"errors"
	"net/http"

	"franchise-store/internal/domain/pricing"
	reqdto "franchise-store/internal/handler/dto/request"
	resdto "franchise-store/internal/handler/dto/response"
	"franchise-store/internal/handler/middleware"
	"franchise-store/internal/usecase/commands"
	"franchise-store/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderCommands commands.OrderCommands
	orderQueries  queries.OrderQueries
}

func NewOrderHandler(orderCommands commands.OrderCommands, orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
	}
}

// @Summary Quote an order
// @Description Preview the pricing breakdown without committing anything
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]any
// @Router /orders/quote [post]
func (h *OrderHandler) Quote(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.orderCommands.Quote(c.Request.Context(), userID, req)
	if err != nil {
		h.respondPricingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewQuoteResponse(result))
}

// @Summary Confirm an order
// @Description Validate pricing and atomically commit the point redemption
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]any
// @Failure 429 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.orderCommands.Confirm(c.Request.Context(), userID, req)
	if err != nil {
		h.respondPricingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.NewOrderResponse(view))
}

// @Summary Adjust delivery fee
// @Description Operator override: recompute the breakdown with a new fee
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body reqdto.AdjustDeliveryFeeRequest true "New delivery fee"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/delivery-fee [patch]
func (h *OrderHandler) AdjustDeliveryFee(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var req reqdto.AdjustDeliveryFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.orderCommands.AdjustDeliveryFee(c.Request.Context(), orderID, req.DeliveryFee)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, commands.ErrOrderNotEditable):
			c.JSON(http.StatusConflict, gin.H{"error": "Order can no longer be edited"})
		default:
			h.respondPricingError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NewOrderResponse(view))
}

// @Summary Get an order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	role, roleOK := middleware.GetUserRole(c)
	if !ok || !roleOK {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	view, err := h.orderQueries.GetByID(c.Request.Context(), orderID, userID, role)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, queries.ErrOrderAccess):
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NewOrderResponse(view))
}

// @Summary List own orders
// @Tags orders
// @Produce json
// @Success 200 {array} resdto.OrderResponse
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	views, err := h.orderQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.NewOrderListResponse(views))
}

func (h *OrderHandler) respondPricingError(c *gin.Context, err error) {
	var capErr *pricing.DiscountCapError

	switch {
	case errors.As(err, &capErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":        "Requested points exceed the discount cap",
			"max_discount": capErr.Max,
		})
	case errors.Is(err, pricing.ErrInsufficientPoints):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient loyalty points"})
	case errors.Is(err, pricing.ErrNegativePoints), errors.Is(err, pricing.ErrNegativeAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
	case errors.Is(err, commands.ErrLoyaltyAccountNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Loyalty account not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
