package class

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	classes := rg.Group("/class")
	{
		classes.POST("/create", h.Create)
		classes.GET("/studio/:studio_id", h.ListByStudio)
		classes.GET("/dancer/:dancer_id", h.ListByDancer)
		classes.GET("/:class_id", h.GetByID)
		classes.PATCH("/:class_id", h.Edit)
		classes.DELETE("/:class_id", h.Delete)
	}
}
