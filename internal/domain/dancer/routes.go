package dancer

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	dancers := rg.Group("/dancer")
	{
		dancers.POST("/create", h.Create)
		dancers.POST("/bulk-upload", h.BulkUpload)
		dancers.GET("/instagram/:instagram", h.GetByInstagram)
		dancers.GET("/:dancer_id", h.GetByID)
		dancers.PATCH("/:dancer_id", h.Edit)
		dancers.POST("/:dancer_id/names", h.AddName)
		dancers.DELETE("/:dancer_id", h.Delete)
	}
}
