package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pasalpos/pasal-api/internal/application/service"
	"github.com/pasalpos/pasal-api/internal/domain/enum"
	"github.com/pasalpos/pasal-api/internal/presentation/http/dto/request"
	"github.com/pasalpos/pasal-api/internal/presentation/http/dto/response"
)

// CartHandler handles cart and checkout HTTP requests
type CartHandler struct {
	checkoutService *service.CheckoutService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(checkoutService *service.CheckoutService) *CartHandler {
	return &CartHandler{checkoutService: checkoutService}
}

// View returns the session cart with computed totals.
// An optional discount query parameter previews its effect on the total.
func (h *CartHandler) View(c *gin.Context) {
	claims := GetSession(c)
	if claims == nil {
		response.Unauthorized(c, "Session not authenticated")
		return
	}

	discount, _ := strconv.ParseFloat(c.DefaultQuery("discount", "0"), 64)
	view := h.checkoutService.View(c.Request.Context(), claims.SessionID, discount)
	response.OK(c, "Cart retrieved successfully", view)
}

// AddItem adds one unit of a product to the session cart
func (h *CartHandler) AddItem(c *gin.Context) {
	claims := GetSession(c)
	if claims == nil {
		response.Unauthorized(c, "Session not authenticated")
		return
	}

	var req request.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	cart, err := h.checkoutService.AddItem(c.Request.Context(), claims.SessionID, req.ProductID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added to cart", cart.Items())
}

// ChangeQuantity adjusts a cart line quantity by a signed delta
func (h *CartHandler) ChangeQuantity(c *gin.Context) {
	claims := GetSession(c)
	if claims == nil {
		response.Unauthorized(c, "Session not authenticated")
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.ChangeQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	cart := h.checkoutService.ChangeQuantity(claims.SessionID, id, req.Delta)
	response.OK(c, "Cart updated successfully", cart.Items())
}

// RemoveItem removes a cart line entirely
func (h *CartHandler) RemoveItem(c *gin.Context) {
	claims := GetSession(c)
	if claims == nil {
		response.Unauthorized(c, "Session not authenticated")
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	cart := h.checkoutService.RemoveItem(claims.SessionID, id)
	response.OK(c, "Item removed from cart", cart.Items())
}

// Clear empties the session cart
func (h *CartHandler) Clear(c *gin.Context) {
	claims := GetSession(c)
	if claims == nil {
		response.Unauthorized(c, "Session not authenticated")
		return
	}

	h.checkoutService.ClearCart(claims.SessionID)
	response.OK(c, "Cart cleared successfully", nil)
}

// Checkout commits the session cart as a sale
func (h *CartHandler) Checkout(c *gin.Context) {
	claims := GetSession(c)
	if claims == nil {
		response.Unauthorized(c, "Session not authenticated")
		return
	}

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	sale, err := h.checkoutService.Commit(c.Request.Context(), claims.SessionID, enum.PaymentMethod(req.PaymentMethod), req.Discount)
	if err != nil {
		response.Error(c, err)
		return
	}
	if sale == nil {
		response.OK(c, "Cart is empty; nothing to commit", nil)
		return
	}

	response.Created(c, "Sale completed successfully", sale)
}
