package location

import (
	"net/http"

	"go-vms/internal/shared/apperror"
	"go-vms/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Countries(c *gin.Context) {
	resp, err := h.service.Countries(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) States(c *gin.Context) {
	resp, err := h.service.States(c.Request.Context(), c.Query("country"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Cities(c *gin.Context) {
	resp, err := h.service.Cities(c.Request.Context(), c.Query("country"), c.Query("state"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}
