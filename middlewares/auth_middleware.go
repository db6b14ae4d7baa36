package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/JashanBansal182304/MessMate/utils"
)

// AuthMiddleware validates the bearer token and exposes the user identity
// on the context for role gating.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ApiResponse{
				Success: false, Message: "Authorization header required",
			})
			return
		}

		claims, err := utils.ParseJWT(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ApiResponse{
				Success: false, Message: "invalid token",
			})
			return
		}

		if v, ok := claims["userId"].(float64); ok {
			c.Set("userID", uint(v))
		}
		if email, ok := claims["email"].(string); ok {
			c.Set("email", email)
		}
		if userType, ok := claims["userType"].(string); ok {
			c.Set("userType", userType)
		}

		c.Next()
	}
}

// RequireRole gates a route group to the given user types.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userType := c.GetString("userType")
		for _, role := range roles {
			if userType == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, utils.ApiResponse{
			Success: false, Message: "insufficient permissions",
		})
	}
}
