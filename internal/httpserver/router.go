package httpserver

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Ravi-kumar178/ccjewllery/internal/admin"
	"github.com/Ravi-kumar178/ccjewllery/internal/cart"
	"github.com/Ravi-kumar178/ccjewllery/internal/catalog"
	"github.com/Ravi-kumar178/ccjewllery/internal/checkout"
	"github.com/Ravi-kumar178/ccjewllery/internal/session"
)

// Deps carries the wired services the routes need.
type Deps struct {
	Carts    *cart.Store
	Catalog  *catalog.Service
	Checkout *checkout.Service
	Admin    *admin.Service
	Sessions *session.Manager
	Backend  pinger

	AdminEmail    string
	AdminPassword string

	// Publishable provider keys handed to the client as-is.
	RazorpayKeyID     string
	StripePublishable string

	CORSOrigins []string
}

// buildRouter wires routes for the storefront and the admin console.
func buildRouter(log *logrus.Logger, deps Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(log.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(deps.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = deps.CORSOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowCredentials = !corsCfg.AllowAllOrigins
	corsCfg.AddAllowHeaders("Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Backend))

	h := &handlers{deps: deps, log: log}

	api := router.Group("/api")
	api.Use(sessionMiddleware())
	{
		api.GET("/config", h.clientConfig)
		api.GET("/categories", h.listCategories)
		api.GET("/products", h.listProducts)
		api.GET("/products/:id", h.getProduct)

		api.GET("/cart", h.getCart)
		api.POST("/cart/items", h.addCartItem)
		api.PATCH("/cart/items/:id", h.updateCartItem)
		api.DELETE("/cart/items/:id", h.removeCartItem)
		api.DELETE("/cart", h.clearCart)

		api.POST("/checkout", h.beginCheckout)
		api.POST("/checkout/order", h.placeOrder)
		api.POST("/checkout/razorpay/verify", h.verifyRazorpay)
		api.POST("/checkout/stripe/confirm", h.confirmStripe)
	}

	api.POST("/admin/login", h.adminLogin)

	adminGroup := api.Group("/admin")
	adminGroup.Use(adminAuthMiddleware(deps.Sessions))
	{
		adminGroup.POST("/logout", h.adminLogout)
		adminGroup.GET("/stats", h.adminStats)
		adminGroup.GET("/users", h.adminUsers)
		adminGroup.GET("/analytics", h.adminAnalytics)
		adminGroup.GET("/products", h.adminProducts)
		adminGroup.POST("/products", h.adminAddProduct)
		adminGroup.DELETE("/products/:id", h.adminDeleteProduct)
		adminGroup.GET("/orders", h.adminOrders)
		adminGroup.PATCH("/orders/:id/status", h.adminUpdateOrderStatus)
	}

	return router, nil
}

type handlers struct {
	deps Deps
	log  *logrus.Logger
}
