package studio

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	studios := rg.Group("/studio")
	{
		studios.POST("/create", h.Create)
		studios.GET("/list", h.List)
		studios.GET("/instagram/:instagram", h.GetByInstagram)
		studios.GET("/:studio_id", h.GetByID)
		studios.PATCH("/:studio_id", h.Edit)
		studios.DELETE("/:studio_id", h.Delete)
	}
}
