package handler

import (
	"net/http"

	"github.com/nmacchitella/fashion-inventory/internal/apierror"
	"github.com/nmacchitella/fashion-inventory/internal/dto"
	"github.com/nmacchitella/fashion-inventory/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MaterialsHandler struct{ svc service.MaterialService }

func NewMaterialsHandler(svc service.MaterialService) *MaterialsHandler {
	return &MaterialsHandler{svc: svc}
}

func (h *MaterialsHandler) Create(c *gin.Context) {
	var req dto.CreateMaterialRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MaterialsHandler) List(c *gin.Context) {
	var filter dto.MaterialFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list materials"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MaterialsHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Material not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MaterialsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	var req dto.UpdateMaterialRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MaterialsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
