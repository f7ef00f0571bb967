package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Mrigankar1134/mascom-Server/models"
)

// ResolveSizeID maps a size string to its lookup row by exact match.
// Returns nil when no such row exists; it never creates one.
func ResolveSizeID(db *gorm.DB, name string) *uint {
	if name == "" {
		return nil
	}
	var size models.Size
	if err := db.Where("size = ?", name).First(&size).Error; err != nil {
		return nil
	}
	return &size.ID
}

// ResolveColorID maps a color string to its lookup row by exact match.
func ResolveColorID(db *gorm.DB, name string) *uint {
	if name == "" {
		return nil
	}
	var color models.Color
	if err := db.Where("color = ?", name).First(&color).Error; err != nil {
		return nil
	}
	return &color.ID
}

// ListAvailableVariants returns the size and color names declared for a
// product.
func ListAvailableVariants(db *gorm.DB, productID uint) (sizes []string, colors []string, err error) {
	var product models.Product
	if err := db.Preload("Sizes").Preload("Colors").First(&product, productID).Error; err != nil {
		return nil, nil, err
	}
	sizes = make([]string, 0, len(product.Sizes))
	for _, s := range product.Sizes {
		sizes = append(sizes, s.Size)
	}
	colors = make([]string, 0, len(product.Colors))
	for _, c := range product.Colors {
		colors = append(colors, c.Color)
	}
	return sizes, colors, nil
}

type AddSizesRequest struct {
	Sizes []string `json:"sizes" binding:"required"`
}

type AddColorsRequest struct {
	Colors []string `json:"colors" binding:"required"`
}

// POST /api/admin/products/:productId/sizes
// Size strings are inserted once system-wide and reused on repeats.
func AddProductSizes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var req AddSizesRequest
		if err := c.ShouldBindJSON(&req); err != nil || len(req.Sizes) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "sizes are required"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			for _, name := range req.Sizes {
				var size models.Size
				if err := tx.Where(models.Size{Size: name}).FirstOrCreate(&size).Error; err != nil {
					return err
				}
				if err := tx.Model(&product).Association("Sizes").Append(&size); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add sizes"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Sizes added to product successfully"})
	}
}

// POST /api/admin/products/:productId/colors
func AddProductColors(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var req AddColorsRequest
		if err := c.ShouldBindJSON(&req); err != nil || len(req.Colors) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "colors are required"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			for _, name := range req.Colors {
				var color models.Color
				if err := tx.Where(models.Color{Color: name}).FirstOrCreate(&color).Error; err != nil {
					return err
				}
				if err := tx.Model(&product).Association("Colors").Append(&color); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add colors"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Colors added to product successfully"})
	}
}

// GET /api/admin/products/:productId/sizes
func GetProductSizes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.Preload("Sizes").First(&product, c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sizes for the product"})
			return
		}

		sizes := make([]string, 0, len(product.Sizes))
		for _, s := range product.Sizes {
			sizes = append(sizes, s.Size)
		}
		c.JSON(http.StatusOK, gin.H{"sizes": sizes})
	}
}

// GET /api/admin/products/:productId/colors
func GetProductColors(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.Preload("Colors").First(&product, c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch colors for the product"})
			return
		}

		colors := make([]string, 0, len(product.Colors))
		for _, col := range product.Colors {
			colors = append(colors, col.Color)
		}
		c.JSON(http.StatusOK, gin.H{"colors": colors})
	}
}
