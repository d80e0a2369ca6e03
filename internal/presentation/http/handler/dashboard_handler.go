package handler

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/pasalpos/pasal-api/internal/application/service"
	"github.com/pasalpos/pasal-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats returns a one-shot dashboard snapshot
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved successfully", stats)
}

// Live streams dashboard snapshots over server-sent events. The first
// event fires immediately; subsequent events fire after every write that
// touches products, sales or customers.
func (h *DashboardHandler) Live(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	ctx := c.Request.Context()
	results := h.dashboardService.Live(ctx)

	c.Stream(func(w io.Writer) bool {
		select {
		case result, ok := <-results:
			if !ok {
				return false
			}
			if result.Err != nil {
				c.SSEvent("error", gin.H{"message": result.Err.Error()})
				return true
			}
			c.SSEvent("stats", result.Value)
			return true
		case <-ctx.Done():
			return false
		}
	})
}
