package search

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dancedir/internal/pkg/response"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/search", h.Search)
}

func (h *Handler) Search(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		response.Message(c, http.StatusBadRequest, "keyword is required")
		return
	}

	results, err := h.repo.Search(c.Request.Context(), keyword)
	if err != nil {
		response.Message(c, http.StatusInternalServerError, "internal server error")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"results": results})
}
