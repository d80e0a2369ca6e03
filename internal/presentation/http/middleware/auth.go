package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pasalpos/pasal-api/internal/presentation/http/dto/response"
	"github.com/pasalpos/pasal-api/pkg/utils"
)

// SessionKey is the gin context key holding the validated session claims.
const SessionKey = "session"

// AuthMiddleware validates the terminal session token minted at PIN login.
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateSessionToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired session")
			c.Abort()
			return
		}

		c.Set(SessionKey, claims)
		c.Next()
	}
}
