package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Mrigankar1134/mascom-Server/auth"
	"github.com/Mrigankar1134/mascom-Server/config"
	orderControllers "github.com/Mrigankar1134/mascom-Server/controllers/order"
)

// SetupRoutes is the single entry-point that wires up auth, member, and
// admin route groups under /api.
func SetupRoutes(r *gin.Engine, db *gorm.DB, payees config.Payees) {
	api := r.Group("/api")

	// Public: registration and login.
	api.POST("/register", auth.RegisterHandler(db))
	api.POST("/login", auth.LoginHandler(db))

	// Websocket feed for admin dashboards.
	api.GET("/orders/ws", orderControllers.OrderWebSocketHandler)

	SetupUserRoutes(api, db)
	SetupAdminRoutes(api, db, payees)
}
