package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Mrigankar1134/mascom-Server/models"
)

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateProductStatus toggles a product between live and hidden.
// PATCH /api/admin/products/:id/status
func UpdateProductStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		if req.Status != string(models.ProductStatusLive) && req.Status != string(models.ProductStatusHidden) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}

		result := db.Model(&models.Product{}).
			Where("id = ?", c.Param("id")).
			Update("status", req.Status)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product status updated successfully"})
	}
}
