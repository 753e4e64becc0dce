package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/multixy/storefront/internal/core/domain"
	"github.com/multixy/storefront/internal/core/ports"
)

// CartHandler exposes cart endpoints. All of them sit behind the
// authorization gate; the acting user is taken from the token claims.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

type addToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type cartItemResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message,omitempty"`
	CartItem *domain.CartItem `json:"cartItem"`
}

// Add puts a product into the caller's cart, or increments its quantity.
//
// @Summary      Add a product to the cart
// @Tags         carts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addToCartRequest  true  "Product and quantity"
// @Success      201   {object}  cartItemResponse
// @Failure      404   {object}  map[string]any
// @Router       /api/carts/create [post]
func (h *CartHandler) Add(c echo.Context) error {
	userID, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.AddItem(c.Request().Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, cartItemResponse{Success: true, Message: "product added to cart", CartItem: item})
}

// List returns the caller's active cart with product details.
func (h *CartHandler) List(c echo.Context) error {
	userID, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	lines, err := h.service.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lines)
}

type updateCartRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// UpdateQuantity sets the quantity of one cart line.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	userID, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.UpdateQuantity(c.Request().Context(), userID, c.Param("id_product"), req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cartItemResponse{Success: true, Message: "cart quantity updated", CartItem: item})
}

// Remove soft-deletes a cart line.
func (h *CartHandler) Remove(c echo.Context) error {
	userID, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	item, err := h.service.Remove(c.Request().Context(), userID, c.Param("id_product"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cartItemResponse{Success: true, Message: "product removed from cart", CartItem: item})
}
