package handler

import (
	"errors"
	"net/http"

	"github.com/nmacchitella/fashion-inventory/internal/apierror"
	"github.com/nmacchitella/fashion-inventory/internal/dto"
	"github.com/nmacchitella/fashion-inventory/internal/service"

	"github.com/gin-gonic/gin"
)

type PlannerHandler struct{ svc service.PlannerService }

func NewPlannerHandler(svc service.PlannerService) *PlannerHandler {
	return &PlannerHandler{svc: svc}
}

// CalculateMaterials godoc
// @Summary Consolidated material requirements for a production plan
// @Tags tools
// @Accept json
// @Produce json
// @Param body body dto.RequirementRequest true "Products and planned quantities"
// @Success 200 {array} dto.MaterialRequirement
// @Failure 400 {object} apierror.APIError
// @Router /v1/tools/calculate-materials [post]
func (h *PlannerHandler) CalculateMaterials(c *gin.Context) {
	var req dto.RequirementRequest
	if !bindAndValidate(c, &req) {
		return
	}

	result, err := h.svc.ComputeRequirements(c.Request.Context(), req)
	if err != nil {
		var invalid *service.InvalidRequirementInputError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, apierror.New(invalid.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to calculate material requirements"))
		return
	}
	c.JSON(http.StatusOK, result)
}
