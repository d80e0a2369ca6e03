package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pasalpos/pasal-api/internal/presentation/http/middleware"
	"github.com/pasalpos/pasal-api/pkg/utils"
)

// GetSession returns the terminal session claims set by the auth middleware,
// or nil when the request is unauthenticated.
func GetSession(c *gin.Context) *utils.SessionClaims {
	value, exists := c.Get(middleware.SessionKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*utils.SessionClaims)
	if !ok {
		return nil
	}
	return claims
}

// parseID parses a numeric path parameter.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
