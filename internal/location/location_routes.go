package location

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	locations := r.Group("/locations")
	{
		locations.GET("/countries", h.Countries)
		locations.GET("/states", h.States)
		locations.GET("/cities", h.Cities)
	}
}
