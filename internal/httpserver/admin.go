package httpserver

import (
	"crypto/subtle"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Ravi-kumar178/ccjewllery/internal/upstream"
)

type adminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// adminLogin checks the configured credentials and issues an opaque
// expiring session token. The comparison is constant time; an empty
// configured password disables the console entirely.
func (h *handlers) adminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if h.deps.AdminPassword == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin console is disabled"})
		return
	}
	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(h.deps.AdminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.deps.AdminPassword)) == 1
	if !emailOK || !passOK {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	token, err := h.deps.Sessions.Issue()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *handlers) adminLogout(c *gin.Context) {
	h.deps.Sessions.Revoke(c.GetString("adminToken"))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *handlers) adminStats(c *gin.Context) {
	stats, err := h.deps.Admin.Stats(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func (h *handlers) adminUsers(c *gin.Context) {
	users, stats, err := h.deps.Admin.Users(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "stats": stats})
}

func (h *handlers) adminAnalytics(c *gin.Context) {
	analytics, err := h.deps.Admin.Analytics(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"analytics": analytics})
}

func (h *handlers) adminProducts(c *gin.Context) {
	products, err := h.deps.Admin.Products(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// adminAddProduct accepts the multipart form the backend expects: name,
// category, description, price (dollars), optional subCategory, sizes and
// bestseller, and image1..image4.
func (h *handlers) adminAddProduct(c *gin.Context) {
	priceCents, err := parseDollarsToCents(c.PostForm("price"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "price must be a positive amount"})
		return
	}
	in := upstream.AddProductInput{
		Name:        c.PostForm("name"),
		Category:    c.PostForm("category"),
		SubCategory: c.PostForm("subCategory"),
		Description: c.PostForm("description"),
		PriceCents:  priceCents,
		Bestseller:  c.PostForm("bestseller") == "true",
	}
	if sizes := c.PostForm("sizes"); sizes != "" {
		in.Sizes = strings.Split(sizes, ",")
	}
	for _, field := range []string{"image1", "image2", "image3", "image4"} {
		header, err := c.FormFile(field)
		if err != nil {
			continue
		}
		file, err := header.Open()
		if err != nil {
			h.respondError(c, err)
			return
		}
		content, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			h.respondError(c, err)
			return
		}
		in.Images = append(in.Images, upstream.MultipartFile{
			Field:    field,
			Filename: header.Filename,
			Content:  content,
		})
	}

	if err := h.deps.Admin.AddProduct(c.Request.Context(), in); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "product added"})
}

func (h *handlers) adminDeleteProduct(c *gin.Context) {
	if err := h.deps.Admin.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *handlers) adminOrders(c *gin.Context) {
	orders, err := h.deps.Admin.Orders(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *handlers) adminUpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	status, err := h.deps.Admin.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "status": status})
}

func parseDollarsToCents(raw string) (int64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || f <= 0 {
		if err == nil {
			err = strconv.ErrSyntax
		}
		return 0, err
	}
	return int64(f*100 + 0.5), nil
}
