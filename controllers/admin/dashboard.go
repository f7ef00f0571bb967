package adminController

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Mrigankar1134/mascom-Server/models"
)

type salesTotals struct {
	TotalSales   int64   `json:"total_sales"`
	TotalRevenue float64 `json:"total_revenue"`
}

type recentOrderRow struct {
	ID            uint                 `json:"id"`
	Name          string               `json:"name"`
	TotalPrice    float64              `json:"total_price"`
	PaymentStatus models.PaymentStatus `json:"payment_status"`
}

type productSalesRow struct {
	ProductID    uint    `json:"product_id"`
	Name         string  `json:"name"`
	QuantitySold int64   `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// DashboardStatsHandler aggregates sales figures over live products,
// today's takings (IST day boundary), user count, recent orders and a
// per-product breakdown.
// GET /api/admin/dashboard-stats
func DashboardStatsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var totals salesTotals
		if err := db.Table("order_items").
			Select("COALESCE(SUM(order_items.quantity), 0) AS total_sales, COALESCE(SUM(order_items.price * order_items.quantity), 0) AS total_revenue").
			Joins("JOIN products ON products.id = order_items.product_id").
			Where("products.status = ?", models.ProductStatusLive).
			Scan(&totals).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard stats"})
			return
		}

		now := time.Now().In(models.IST)
		dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, models.IST)
		dayEnd := dayStart.Add(24 * time.Hour)

		var todaySales float64
		if err := db.Table("order_items").
			Select("COALESCE(SUM(order_items.price * order_items.quantity), 0)").
			Joins("JOIN orders ON orders.id = order_items.order_id").
			Joins("JOIN products ON products.id = order_items.product_id").
			Where("products.status = ? AND orders.created_at >= ? AND orders.created_at < ?",
				models.ProductStatusLive, dayStart, dayEnd).
			Scan(&todaySales).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard stats"})
			return
		}

		var userCount int64
		if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard stats"})
			return
		}

		var recent []recentOrderRow
		if err := db.Table("orders").
			Select("orders.id, users.name, orders.total_price, orders.payment_status").
			Joins("JOIN users ON users.id = orders.user_id").
			Order("orders.created_at DESC").
			Limit(5).
			Scan(&recent).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard stats"})
			return
		}

		var byProduct []productSalesRow
		if err := db.Table("order_items").
			Select("products.id AS product_id, products.name, SUM(order_items.quantity) AS quantity_sold, SUM(order_items.price * order_items.quantity) AS revenue").
			Joins("JOIN products ON products.id = order_items.product_id").
			Where("products.status = ?", models.ProductStatusLive).
			Group("products.id, products.name").
			Scan(&byProduct).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard stats"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"totalSales":     totals.TotalSales,
			"totalRevenue":   totals.TotalRevenue,
			"todaySales":     todaySales,
			"userCount":      userCount,
			"recentOrders":   recent,
			"salesByProduct": byProduct,
		})
	}
}
