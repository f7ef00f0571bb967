package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Mrigankar1134/mascom-Server/auth"
	orderControllers "github.com/Mrigankar1134/mascom-Server/controllers/order"
	productcontroller "github.com/Mrigankar1134/mascom-Server/controllers/product"
	"github.com/Mrigankar1134/mascom-Server/controllers/upload"
	"github.com/Mrigankar1134/mascom-Server/middleware"
)

// SetupUserRoutes registers the JWT-protected member endpoints.
func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB) {
	authed := api.Group("")
	authed.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile ────────────────
		authed.GET("/user", auth.GetUserHandler(db))

		// ──────────────── Catalog ────────────────
		authed.GET("/products", productcontroller.GetProducts(db))

		// ──────────────── Orders ────────────────
		authed.POST("/order", orderControllers.CreateOrderHandler(db))
		authed.GET("/user/orders", orderControllers.GetUserOrdersHandler(db))
		authed.PUT("/order/:orderId/item/:itemId", orderControllers.UpdateOrderItemHandler(db))

		// ──────────────── Uploads ────────────────
		authed.POST("/upload-screenshot", upload.UploadScreenshot())
		authed.POST("/upload", upload.UploadImages())
	}
}
