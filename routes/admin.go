package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Mrigankar1134/mascom-Server/config"
	adminController "github.com/Mrigankar1134/mascom-Server/controllers/admin"
	productcontroller "github.com/Mrigankar1134/mascom-Server/controllers/product"
	"github.com/Mrigankar1134/mascom-Server/middleware"
)

// SetupAdminRoutes registers all "/api/admin/*" endpoints. Requires a
// valid token with the admin claim; catalog mutations additionally
// require the super-admin claim.
func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB, payees config.Payees) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ─────────── Payment Verification ───────────
		adminGroup.GET("/my-payments", adminController.MyPaymentsHandler(db, payees))
		adminGroup.POST("/verify-payment", adminController.VerifyPaymentHandler(db))
		adminGroup.POST("/decline-payment", adminController.DeclinePaymentHandler(db))

		// ─────────── Member Management ───────────
		adminGroup.GET("/users", adminController.GetAllUsers(db))
		adminGroup.GET("/user/:id/details", adminController.GetUserDetails(db))

		// ─────────── Dashboard & Reports ───────────
		adminGroup.GET("/dashboard-stats", adminController.DashboardStatsHandler(db))
		adminGroup.GET("/orders/export-excel", adminController.ExportOrdersToExcel(db))

		// ─────────── Catalog Management ───────────
		products := adminGroup.Group("/products")
		{
			products.POST("", productcontroller.CreateProduct(db))
			products.GET("", productcontroller.GetProductsWithImages(db))
			products.PATCH("/:id/status", middleware.RequireSuperAdmin, productcontroller.UpdateProductStatus(db))
			products.DELETE("/:id", middleware.RequireSuperAdmin, productcontroller.DeleteProduct(db))

			products.POST("/:id/sizes", productcontroller.AddProductSizes(db))
			products.GET("/:id/sizes", productcontroller.GetProductSizes(db))
			products.POST("/:id/colors", productcontroller.AddProductColors(db))
			products.GET("/:id/colors", productcontroller.GetProductColors(db))
		}

		adminGroup.GET("/products-with-images", productcontroller.GetProductsWithImages(db))
	}
}
