package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/multixy/storefront/internal/api/metrics"
	"github.com/multixy/storefront/internal/core/domain"
	"github.com/multixy/storefront/internal/core/ports"
)

// OrderHandler exposes order endpoints.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type orderResponse struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message"`
	Order        *domain.Order `json:"order"`
	WhatsAppLink string        `json:"whatsappLink,omitempty"`
}

// Create turns the caller's cart into a pending order.
//
// @Summary      Create an order from the cart
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  orderResponse
// @Failure      404  {object}  map[string]any
// @Router       /api/orders/create [post]
func (h *OrderHandler) Create(c echo.Context) error {
	userID, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	result, err := h.service.CreateFromCart(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	metrics.OrdersCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, orderResponse{
		Success:      true,
		Message:      "order created",
		Order:        result.Order,
		WhatsAppLink: result.WhatsAppLink,
	})
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus applies a status change to an order.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id_order"), domain.OrderStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderResponse{Success: true, Message: "order " + req.Status, Order: order})
}
