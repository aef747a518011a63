package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pasteleria-backend/config"
	"pasteleria-backend/controllers"
	"pasteleria-backend/middleware"
)

// Setup configures and returns the Gin engine.
func Setup(ctrl *controllers.Controller, cfg *config.AppConfig) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	// Admin pages. The guard decides per request: pass through, redirect to
	// login, or redirect to the dashboard root.
	admin := r.Group("/admin")
	admin.Use(middleware.SessionGuard())
	{
		admin.GET("", ctrl.DashboardPage)
		admin.GET("/login", ctrl.LoginPage)
		admin.GET("/inventario", ctrl.InventarioPage)
		admin.GET("/pedidos", ctrl.PedidosPage)
	}

	api := r.Group("/api")
	{
		api.GET("/health", ctrl.HealthCheck)

		api.POST("/login", ctrl.Login)
		api.POST("/logout", ctrl.Logout)

		protected := api.Group("/")
		protected.Use(middleware.RequireSession(ctrl.PasetoSecretKey))
		{
			protected.GET("/session", ctrl.Session)
			protected.GET("/dashboard", ctrl.GetDashboardStats)

			protected.GET("/products", ctrl.GetProducts)
			protected.POST("/products", ctrl.CreateProduct)
			protected.PUT("/products/:id", ctrl.UpdateProduct)
			protected.DELETE("/products/:id", ctrl.DeleteProduct)

			protected.GET("/orders", ctrl.GetOrders)
			protected.PUT("/orders/:id/status", ctrl.UpdateOrderStatus)

			protected.GET("/products/stream", ctrl.StreamProducts)
			protected.GET("/orders/stream", ctrl.StreamOrders)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	return r
}
