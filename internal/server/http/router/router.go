package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/suoapvs/alexcoffee/internal/server/http/handlers"
	"github.com/suoapvs/alexcoffee/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.CoffeeFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(middleware.Access(facade, middleware.DefaultAccessPolicy()))

	authHandler := handlers.NewAuthHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)

	api := engine.Group("/api")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	api.GET("/products", catalogHandler.List)
	api.GET("/products/article/:article", catalogHandler.GetByArticle)
	api.GET("/products/:url", catalogHandler.GetByURL)
	api.GET("/categories", catalogHandler.Categories)
	api.GET("/categories/:url/products", catalogHandler.CategoryProducts)

	cart := api.Group("")
	cart.Use(middleware.CartSession())
	cart.GET("/cart", cartHandler.Get)
	cart.POST("/cart/items", cartHandler.AddItem)
	cart.DELETE("/cart/items/:productID", cartHandler.RemoveItem)
	cart.DELETE("/cart", cartHandler.Clear)

	checkout := api.Group("")
	checkout.Use(middleware.CartSession(), middleware.AuthOptional(facade))
	checkout.POST("/checkout", orderHandler.Checkout)

	client := api.Group("")
	client.Use(middleware.AuthRequired(facade))
	client.GET("/profile", authHandler.Profile)
	client.GET("/orders", orderHandler.MyOrders)

	// Role gating for the back-office groups happens in the access
	// policy table above.
	manager := api.Group("/manager")
	manager.GET("/orders", orderHandler.List)
	manager.GET("/orders/:number", orderHandler.Get)
	manager.PATCH("/orders/:number/status", orderHandler.UpdateStatus)
	manager.PATCH("/orders/:number/manager", orderHandler.AssignManager)

	admin := api.Group("/admin")
	admin.POST("/products", adminHandler.CreateProduct)
	admin.PUT("/products/:url", adminHandler.UpdateProduct)
	admin.DELETE("/products", adminHandler.DeleteAllProducts)
	admin.DELETE("/products/article/:article", adminHandler.DeleteProductByArticle)
	admin.DELETE("/products/:url", adminHandler.DeleteProduct)
	admin.POST("/categories", adminHandler.CreateCategory)
	admin.DELETE("/categories/:url", adminHandler.DeleteCategory)
	admin.DELETE("/orders", adminHandler.DeleteAllOrders)
	admin.DELETE("/orders/:number", adminHandler.DeleteOrder)
	admin.GET("/users", adminHandler.UsersByRole)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)

	return engine
}
