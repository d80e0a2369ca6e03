package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pasalpos/pasal-api/internal/application/service"
	"github.com/pasalpos/pasal-api/internal/presentation/http/dto/request"
	"github.com/pasalpos/pasal-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles store settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get returns the store settings merged over defaults
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.Load(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// Save replaces the store settings with the submitted key/value map
func (h *SettingsHandler) Save(c *gin.Context) {
	var req request.SaveSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if err := h.settingsService.Save(c.Request.Context(), req.Settings); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings saved successfully", nil)
}

// Reset wipes all store data and restores the starter catalog
func (h *SettingsHandler) Reset(c *gin.Context) {
	if err := h.settingsService.ResetDatabase(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Database reset successfully", nil)
}
