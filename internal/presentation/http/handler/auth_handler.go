package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pasalpos/pasal-api/internal/application/service"
	"github.com/pasalpos/pasal-api/internal/presentation/http/dto/request"
	"github.com/pasalpos/pasal-api/internal/presentation/http/dto/response"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login verifies the terminal PIN and issues a session token
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.authService.Login(req.PIN, req.StoreName)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", result)
}
