package handler

import (
	"net/http"

	"github.com/nmacchitella/fashion-inventory/internal/apierror"
	"github.com/nmacchitella/fashion-inventory/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	resp, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to load dashboard"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
