package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ValidateToken checks the bearer JWT and puts the caller's identity into
// the request context.
func ValidateToken(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access forbidden: No token provided"})
		c.Abort()
		return
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}

	if id, ok := claims["id"].(float64); ok {
		c.Set("user_id", uint(id))
	}
	if userType, ok := claims["userType"].(string); ok {
		c.Set("user_type", userType)
	}
	if isAdmin, ok := claims["isAdmin"].(bool); ok {
		c.Set("is_admin", isAdmin)
	}
	if superAdmin, ok := claims["superAdmin"].(bool); ok {
		c.Set("super_admin", superAdmin)
	}

	c.Next()
}

// RequireAdmin guards the /api/admin group. It runs after ValidateToken.
func RequireAdmin(c *gin.Context) {
	if !c.GetBool("is_admin") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		c.Abort()
		return
	}
	c.Next()
}

// RequireSuperAdmin guards catalog mutations reserved for super admins.
func RequireSuperAdmin(c *gin.Context) {
	if !c.GetBool("super_admin") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Super admin access required"})
		c.Abort()
		return
	}
	c.Next()
}
