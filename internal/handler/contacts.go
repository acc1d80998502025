package handler

import (
	"net/http"

	"github.com/nmacchitella/fashion-inventory/internal/apierror"
	"github.com/nmacchitella/fashion-inventory/internal/dto"
	"github.com/nmacchitella/fashion-inventory/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ContactsHandler struct{ svc service.ContactService }

func NewContactsHandler(svc service.ContactService) *ContactsHandler {
	return &ContactsHandler{svc: svc}
}

func (h *ContactsHandler) Create(c *gin.Context) {
	var req dto.CreateContactRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		status := http.StatusBadRequest
		if err == service.ErrDuplicateContactEmail {
			status = http.StatusConflict
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ContactsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), c.Query("type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list contacts"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ContactsHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Contact not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ContactsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	var req dto.UpdateContactRequest
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

func (h *ContactsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
