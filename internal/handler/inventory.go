package handler

import (
	"net/http"

	"github.com/nmacchitella/fashion-inventory/internal/apierror"
	"github.com/nmacchitella/fashion-inventory/internal/dto"
	"github.com/nmacchitella/fashion-inventory/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventoryHandler struct{ svc service.InventoryService }

func NewInventoryHandler(svc service.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

func (h *InventoryHandler) List(c *gin.Context) {
	var filter dto.InventoryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list inventory"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Inventory entry not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) Adjust(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	var req dto.AdjustInventoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Adjust(c.Request.Context(), id, req)
	if err != nil {
		status := http.StatusBadRequest
		if err == service.ErrInventoryNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) ListMovements(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	resp, err := h.svc.ListMovements(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
