package employee

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	employees := r.Group("/employee")
	{
		employees.POST("/by-empid", h.ByEmpID)
	}
}
