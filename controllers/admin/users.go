package adminController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Mrigankar1134/mascom-Server/models"
)

// GetAllUsers lists every registered member.
// GET /api/admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

type userOrderItemView struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	SizeID      *uint   `json:"size_id"`
	ColorID     *uint   `json:"color_id"`
	CustomName  string  `json:"custom_name"`
	Price       float64 `json:"price"`
}

type userOrderView struct {
	OrderID       uint                 `json:"order_id"`
	TotalPrice    float64              `json:"total_price"`
	TransactionID string               `json:"transaction_id"`
	PaymentStatus models.PaymentStatus `json:"payment_status"`
	CreatedAt     string               `json:"created_at"`
	Items         []userOrderItemView  `json:"items"`
}

// GetUserDetails returns one member's profile plus their orders grouped
// with line items.
// GET /api/admin/user/:id/details
func GetUserDetails(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.First(&user, c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user details and orders"})
			return
		}

		var orders []models.Order
		if err := db.Preload("Items").
			Where("user_id = ?", user.ID).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user details and orders"})
			return
		}

		views := make([]userOrderView, 0, len(orders))
		for _, order := range orders {
			view := userOrderView{
				OrderID:       order.ID,
				TotalPrice:    order.TotalPrice,
				TransactionID: order.TransactionID,
				PaymentStatus: order.PaymentStatus,
				CreatedAt:     order.CreatedAt.Format("2006-01-02 15:04:05"),
				Items:         []userOrderItemView{},
			}
			for _, item := range order.Items {
				itemView := userOrderItemView{
					Quantity:   item.Quantity,
					SizeID:     item.SizeID,
					ColorID:    item.ColorID,
					CustomName: item.CustomName,
					Price:      item.Price,
				}
				var product models.Product
				if err := db.First(&product, item.ProductID).Error; err == nil {
					itemView.ProductName = product.Name
				}
				view.Items = append(view.Items, itemView)
			}
			views = append(views, view)
		}

		c.JSON(http.StatusOK, gin.H{
			"userDetails": user,
			"orders":      views,
		})
	}
}
