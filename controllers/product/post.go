package productcontroller

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Mrigankar1134/mascom-Server/controllers/upload"
	"github.com/Mrigankar1134/mascom-Server/models"
)

// CreateProduct creates a catalog entry with its images attached
// atomically. Multipart form: product fields plus up to 5 "images" files.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		if name == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
			return
		}
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		// available_for arrives as a JSON array, stored comma-separated.
		availableFor := ""
		if raw := c.PostForm("available_for"); raw != "" {
			var categories []string
			if err := json.Unmarshal([]byte(raw), &categories); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid available_for format"})
				return
			}
			availableFor = strings.Join(categories, ",")
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
			return
		}
		files := form.File["images"]
		if len(files) > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "At most 5 images allowed"})
			return
		}

		// Store the images first so a failed write never leaves a product
		// row pointing at missing files.
		var imageURLs []string
		for _, file := range files {
			url, err := upload.SaveFile(c, file, "products")
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			imageURLs = append(imageURLs, url)
		}

		product := models.Product{
			Name:             name,
			Description:      c.PostForm("description"),
			Price:            price,
			Category:         c.PostForm("category"),
			CustomizableName: c.PostForm("customizable_name") == "true",
			SizeAvailable:    c.PostForm("size_available") == "true",
			ColorAvailable:   c.PostForm("color_available") == "true",
			Status:           models.ProductStatusLive,
			AvailableFor:     availableFor,
		}
		for _, url := range imageURLs {
			product.Images = append(product.Images, models.ProductImage{URL: url})
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&product).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":   "Product added successfully",
			"productId": product.ID,
			"imageUrls": imageURLs,
		})
	}
}
