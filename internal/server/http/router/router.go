package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"storefront/internal/server/http/handlers"
	"storefront/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	checkoutHandler := handlers.NewCheckoutHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	staffHandler := handlers.NewStaffHandler(facade)

	api := engine.Group("/api")

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	api.GET("/categories", catalogHandler.Categories)
	api.GET("/products", catalogHandler.Products)
	api.GET("/products/:slug", catalogHandler.Product)

	// The cart works for guests and authenticated customers alike. The
	// session cookie identifies the guest cart until login adopts it.
	cart := api.Group("/cart")
	cart.Use(middleware.AuthOptional(facade))
	cart.Use(middleware.CartSession())
	cart.GET("", cartHandler.Show)
	cart.POST("/items", cartHandler.Add)
	cart.POST("/items/:id/increase", cartHandler.Increase)
	cart.POST("/items/:id/decrease", cartHandler.Decrease)
	cart.DELETE("/items/:id", cartHandler.Remove)

	checkout := api.Group("/checkout")
	checkout.Use(middleware.AuthRequired(facade))
	checkout.Use(middleware.CartSession())
	checkout.GET("/addresses", checkoutHandler.Addresses)
	checkout.POST("/addresses", checkoutHandler.SetAddresses)
	checkout.GET("/delivery", checkoutHandler.DeliveryOptions)
	checkout.POST("/delivery", checkoutHandler.SetDelivery)
	checkout.POST("/payment", checkoutHandler.ConfirmPayment)

	userAuth := user.Group("")
	userAuth.Use(middleware.AuthRequired(facade))
	userAuth.GET("/orders", orderHandler.List)
	userAuth.GET("/orders/:id", orderHandler.Get)

	staff := api.Group("/staff")
	staff.Use(middleware.AuthRequired(facade))
	staff.Use(middleware.StaffRequired())
	staff.GET("/orders", staffHandler.Orders)
	staff.GET("/products", staffHandler.Products)
	staff.POST("/products", staffHandler.CreateProduct)
	staff.PUT("/products/:id", staffHandler.UpdateProduct)
	staff.DELETE("/products/:id", staffHandler.DeleteProduct)

	return engine
}
