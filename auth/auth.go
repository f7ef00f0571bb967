package auth

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/Mrigankar1134/mascom-Server/models"
)

type RegisterRequest struct {
	Name       string `json:"Name" binding:"required"`
	Phone      string `json:"Phone"`
	Section    string `json:"Section"`
	RollNumber string `json:"Roll_Number" binding:"required"`
	Hostel     string `json:"Hostel"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	UserType   string `json:"userType" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// IssueToken signs a 24h JWT carrying the identity claims the middleware
// restores on each request.
func IssueToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":         user.ID,
		"email":      user.Email,
		"userType":   user.UserType,
		"isAdmin":    user.IsAdmin,
		"superAdmin": user.SuperAdmin,
		"exp":        time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// POST /api/register
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !models.ValidUserType(req.UserType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userType"})
			return
		}

		var existing models.User
		err := db.Where("email = ? OR roll_number = ?", req.Email, req.RollNumber).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Email or Roll Number already registered"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error registering user"})
			return
		}

		user := models.User{
			Name:       req.Name,
			Phone:      req.Phone,
			Section:    req.Section,
			RollNumber: req.RollNumber,
			Hostel:     req.Hostel,
			Email:      req.Email,
			Password:   req.Password,
			UserType:   req.UserType,
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error registering user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User registered successfully"})
	}
}

// POST /api/login
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		if err := db.Where("email = ? AND password = ?", req.Email, req.Password).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		token, err := IssueToken(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login error"})
			return
		}

		// Best effort: a failed stamp must not block the login.
		now := time.Now().In(models.IST)
		if err := db.Model(&user).Update("last_login", now).Error; err != nil {
			log.Printf("❌ Failed to update last_login for user %d: %v", user.ID, err)
		}

		c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token})
	}
}

// GET /api/user
func GetUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}
