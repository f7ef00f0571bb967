// Package upload stores multipart files on disk and hands back retrievable
// URLs. Files land under UPLOAD_DIR and are served from /uploads.
package upload

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Dir returns the root upload directory.
func Dir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// SaveFile writes one uploaded file under the given subfolder and returns
// its public URL. The stored name is prefixed with a UUID so repeated
// uploads of the same filename never collide.
func SaveFile(c *gin.Context, file *multipart.FileHeader, subdir string) (string, error) {
	saveDir := filepath.Join(Dir(), subdir)
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", err
	}

	base := strings.ReplaceAll(filepath.Base(file.Filename), " ", "_")
	filename := fmt.Sprintf("%s_%s", uuid.NewString(), base)

	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		return "", err
	}
	return fmt.Sprintf("/uploads/%s/%s", subdir, filename), nil
}

// UploadScreenshot stores a payment proof image.
// POST /api/upload-screenshot
func UploadScreenshot() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
			return
		}

		url, err := SaveFile(c, file, "screenshots")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload screenshot"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Screenshot uploaded successfully",
			"screenshotUrl": url,
		})
	}
}

// UploadImages stores up to 5 general-purpose images.
// POST /api/upload
func UploadImages() gin.HandlerFunc {
	return func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
			return
		}
		files := form.File["file"]
		if len(files) == 0 || len(files) > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Between 1 and 5 files required"})
			return
		}

		var urls []string
		for _, file := range files {
			url, err := SaveFile(c, file, "uploads")
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload files"})
				return
			}
			urls = append(urls, url)
		}

		c.JSON(http.StatusOK, gin.H{
			"message":   "Files uploaded successfully",
			"imageUrls": urls,
		})
	}
}
