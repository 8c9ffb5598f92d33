package studio

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dancedir/internal/pkg/apperr"
	"dancedir/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("studio_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) GetByInstagram(c *gin.Context) {
	resp, err := h.service.GetByInstagram(c.Request.Context(), c.Param("instagram"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) Edit(c *gin.Context) {
	var req EditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.Edit(c.Request.Context(), c.Param("studio_id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("studio_id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeError(c *gin.Context, err error) {
	if errors.Is(err, ErrNotFound) {
		response.Message(c, http.StatusNotFound, "studio not found")
		return
	}
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		response.Message(c, http.StatusBadRequest, appErr.Error())
		return
	}
	response.Message(c, http.StatusInternalServerError, "internal server error")
}
