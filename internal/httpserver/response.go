package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ravi-kumar178/ccjewllery/internal/admin"
	"github.com/Ravi-kumar178/ccjewllery/internal/checkout"
	"github.com/Ravi-kumar178/ccjewllery/internal/domain"
	"github.com/Ravi-kumar178/ccjewllery/internal/upstream"
)

// respondError maps the error taxonomy onto status codes: validation
// failures never reached the network (422), backend rejections are
// gateway failures (502), everything else is internal.
func (h *handlers) respondError(c *gin.Context, err error) {
	var checkoutErr *checkout.ValidationError
	var adminErr *admin.ValidationError
	var backendErr *upstream.BackendError

	switch {
	case errors.As(err, &checkoutErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": checkoutErr.Message, "field": checkoutErr.Field})
	case errors.As(err, &adminErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": adminErr.Message})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrEmptyCart), errors.Is(err, domain.ErrNoResolvableItems):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, checkout.ErrSignatureMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, checkout.ErrPaymentIncomplete):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
	case errors.As(err, &backendErr):
		h.log.WithError(err).Warn("backend rejected request")
		c.JSON(http.StatusBadGateway, gin.H{"error": backendErr.Message})
	default:
		h.log.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// cartResponse is the cart plus its derived totals, recomputed per render.
func cartResponse(cart domain.Cart) gin.H {
	return gin.H{"cart": cart, "totals": cart.Totals()}
}
