package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/Mrigankar1134/mascom-Server/controllers/product"
	"github.com/Mrigankar1134/mascom-Server/models"
)

// AllowVariantEditAfterPayment is a deliberate policy: buyers may correct
// a size or color even after their payment has been verified or declined.
// Flip this to restrict edits to orders still pending verification.
const AllowVariantEditAfterPayment = true

type UpdateItemVariantRequest struct {
	Size  string `json:"size"`
	Color string `json:"color"`
}

// UpdateOrderItemHandler changes the size and/or color on an existing
// line item. Quantity and price are frozen at purchase and cannot be
// edited here. Only the fields present in the request are touched.
// PUT /api/order/:orderId/item/:itemId
func UpdateOrderItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderId")
		itemID := c.Param("itemId")

		var req UpdateItemVariantRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if req.Size == "" && req.Color == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "size or color is required"})
			return
		}

		// A provided string must resolve to a known lookup row; unlike
		// order creation, the editor never silently stores a null.
		updates := map[string]interface{}{}
		if req.Size != "" {
			sizeID := productcontroller.ResolveSizeID(db, req.Size)
			if sizeID == nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid size"})
				return
			}
			updates["size_id"] = *sizeID
		}
		if req.Color != "" {
			colorID := productcontroller.ResolveColorID(db, req.Color)
			if colorID == nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid color"})
				return
			}
			updates["color_id"] = *colorID
		}

		if !AllowVariantEditAfterPayment {
			var order models.Order
			if err := db.First(&order, orderID).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order item not found"})
				return
			}
			if order.PaymentStatus != models.PaymentVerificationPending {
				c.JSON(http.StatusConflict, gin.H{"error": "Order can no longer be edited"})
				return
			}
		}

		result := db.Model(&models.OrderItem{}).
			Where("order_id = ? AND id = ?", orderID, itemID).
			Updates(updates)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update options"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Options updated successfully"})
	}
}
