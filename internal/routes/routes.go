package routes

import (
	"path/filepath"

	"github.com/gin-gonic/gin"

	"storefront/internal/auth"
	"storefront/internal/handlers"
	"storefront/internal/middleware"
	"storefront/internal/repository"
	"storefront/internal/session"
)

// RegisterRoutes monta la API JSON y el frontend estático
func RegisterRoutes(router *gin.Engine, store *repository.Store, sessions *session.Store, credentials auth.CredentialChecker, staticDir string) {
	products := handlers.NewProductHandler(store)
	cart := handlers.NewCartHandler(sessions)
	orders := handlers.NewOrderHandler(store, sessions)
	admin := handlers.NewAdminHandler(sessions, credentials)

	router.Use(middleware.RequestLogger())
	router.Use(middleware.Session())

	requireAdmin := middleware.RequireAdmin(sessions)

	api := router.Group("/api")
	{
		api.GET("/products", products.ListProducts)
		api.GET("/products/:id", products.GetProduct)
		api.POST("/products", requireAdmin, products.CreateProduct)
		api.PUT("/products/:id", requireAdmin, products.UpdateProduct)
		api.DELETE("/products/:id", requireAdmin, products.DeleteProduct)

		api.GET("/cart", cart.GetCart)
		api.POST("/cart", cart.AddItem)
		api.PUT("/cart/:productId", cart.UpdateItem)
		api.DELETE("/cart/:productId", cart.RemoveItem)

		api.POST("/orders", orders.CreateOrder)
		api.GET("/orders", requireAdmin, orders.ListOrders)

		api.POST("/admin/login", admin.Login)
		api.POST("/admin/logout", admin.Logout)
		api.GET("/admin/check", admin.Check)
	}

	if staticDir != "" {
		router.StaticFile("/", filepath.Join(staticDir, "index.html"))
		router.StaticFile("/admin.html", filepath.Join(staticDir, "admin.html"))
		router.Static("/js", filepath.Join(staticDir, "js"))
		router.Static("/css", filepath.Join(staticDir, "css"))
	}
}
