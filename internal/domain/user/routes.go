package user

import "github.com/gin-gonic/gin"

// RegisterAuthRoutes mounts the public auth endpoints.
func (h *Handler) RegisterAuthRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
}

// RegisterProtectedRoutes mounts the endpoints that require a valid token.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/logout", h.Logout)
	rg.GET("/auth/me", h.Me)

	users := rg.Group("/user")
	{
		users.GET("/:user_id", h.GetByID)
		users.PATCH("/:user_id", h.Edit)
		users.DELETE("/:user_id", h.Delete)
	}
}
