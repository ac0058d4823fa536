package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Ravi-kumar178/ccjewllery/internal/catalog"
	"github.com/Ravi-kumar178/ccjewllery/internal/checkout"
	"github.com/Ravi-kumar178/ccjewllery/internal/domain"
	"github.com/Ravi-kumar178/ccjewllery/internal/upstream"
)

// clientConfig hands the storefront its publishable provider keys.
func (h *handlers) clientConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"razorpayKeyId":        h.deps.RazorpayKeyID,
		"stripePublishableKey": h.deps.StripePublishable,
	})
}

func (h *handlers) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.deps.Catalog.Categories()})
}

// listProducts filters the live catalog. A failed upstream fetch renders as
// an empty list; the browse page has no error banner, only the log line.
func (h *handlers) listProducts(c *gin.Context) {
	filters := catalog.Filters{
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		PriceRange: c.Query("priceRange"),
	}
	products, err := h.deps.Catalog.List(c.Request.Context(), filters)
	if err != nil {
		h.log.WithError(err).Error("catalog fetch failed")
		c.JSON(http.StatusOK, gin.H{"products": []domain.Product{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *handlers) getProduct(c *gin.Context) {
	product, err := h.deps.Catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (h *handlers) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, cartResponse(h.deps.Carts.Get(sessionID(c))))
}

type addCartItemRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Image      string `json:"image"`
	Quantity   int    `json:"quantity"`
}

func (h *handlers) addCartItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.ID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item id is required"})
		return
	}
	// Quick-add by product id: fill the snapshot from the live catalog.
	if req.Name == "" {
		product, err := h.deps.Catalog.Get(c.Request.Context(), req.ID)
		if err != nil {
			h.respondError(c, err)
			return
		}
		req.Name = product.Name
		req.PriceCents = product.PriceCents
		if len(product.Images) > 0 {
			req.Image = product.Images[0]
		}
	}
	cart := h.deps.Carts.AddItem(sessionID(c), domain.CartItem{
		ID:         req.ID,
		Name:       req.Name,
		PriceCents: req.PriceCents,
		Image:      req.Image,
		Quantity:   req.Quantity,
	})
	c.JSON(http.StatusOK, cartResponse(cart))
}

func (h *handlers) updateCartItem(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	cart, err := h.deps.Carts.UpdateQuantity(sessionID(c), c.Param("id"), req.Quantity)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(cart))
}

func (h *handlers) removeCartItem(c *gin.Context) {
	c.JSON(http.StatusOK, cartResponse(h.deps.Carts.RemoveItem(sessionID(c), c.Param("id"))))
}

func (h *handlers) clearCart(c *gin.Context) {
	h.deps.Carts.Clear(sessionID(c))
	c.JSON(http.StatusOK, cartResponse(h.deps.Carts.Get(sessionID(c))))
}

func (h *handlers) beginCheckout(c *gin.Context) {
	draft, err := h.deps.Checkout.Begin(c.Request.Context(), sessionID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

type placeOrderRequest struct {
	Method   string              `json:"method"`
	Shipping domain.ShippingForm `json:"shipping"`
	Card     *domain.CardForm    `json:"card,omitempty"`
}

func (h *handlers) placeOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	method, ok := domain.ParsePaymentMethod(req.Method)
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unsupported payment method", "field": "method"})
		return
	}
	result, err := h.deps.Checkout.PlaceOrder(c.Request.Context(), sessionID(c), checkout.PlaceOrderInput{
		Method:   method,
		Shipping: req.Shipping,
		Card:     req.Card,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handlers) verifyRazorpay(c *gin.Context) {
	var req upstream.RazorpayVerification
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.deps.Checkout.VerifyRazorpay(c.Request.Context(), sessionID(c), req); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *handlers) confirmStripe(c *gin.Context) {
	var req struct {
		OrderID string `json:"orderId"`
		Success bool   `json:"success"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.deps.Checkout.ConfirmStripe(c.Request.Context(), sessionID(c), req.OrderID, req.Success); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
