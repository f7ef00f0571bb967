package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Mrigankar1134/mascom-Server/models"
)

type productView struct {
	models.Product
	ImageURLs    []string `json:"image_urls"`
	AvailableFor []string `json:"available_for"`
}

func toView(p models.Product) productView {
	urls := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		urls = append(urls, img.URL)
	}
	categories := []string{}
	if p.AvailableFor != "" {
		categories = strings.Split(p.AvailableFor, ",")
	}
	return productView{Product: p, ImageURLs: urls, AvailableFor: categories}
}

func visibleTo(p models.Product, userType string) bool {
	if p.AvailableFor == "" {
		return true
	}
	for _, category := range strings.Split(p.AvailableFor, ",") {
		if strings.TrimSpace(category) == userType {
			return true
		}
	}
	return false
}

// GetProducts lists live products visible to the caller's user category.
// GET /api/products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userType := c.GetString("user_type")

		var products []models.Product
		if err := db.Preload("Images").Preload("Sizes").Preload("Colors").
			Where("status = ?", models.ProductStatusLive).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		views := []productView{}
		for _, p := range products {
			if visibleTo(p, userType) {
				views = append(views, toView(p))
			}
		}

		c.JSON(http.StatusOK, gin.H{"products": views})
	}
}

// GetProductsWithImages lists the full catalog, hidden entries included.
// GET /api/admin/products-with-images
func GetProductsWithImages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Images").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products with images"})
			return
		}

		views := make([]productView, 0, len(products))
		for _, p := range products {
			views = append(views, toView(p))
		}

		c.JSON(http.StatusOK, gin.H{"products": views})
	}
}
