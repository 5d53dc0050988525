package visitor

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	visitors := r.Group("/visitors")
	{
		visitors.GET("", h.List)
		visitors.POST("", h.Register)
		visitors.PUT("/edit", h.Edit)
		visitors.PUT("/out", h.Checkout)
		visitors.GET("/open-by-contact", h.OpenByContact)
		visitors.GET("/export", h.Export)
	}
}
