package auth

import (
	"net/http"

	"go-vms/internal/shared/apperror"
	"go-vms/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	// QR logins want the dashboard to jump straight to the registration form.
	if c.Query("from") == "qr" {
		h.service.SetFormFlag(c.Request.Context(), resp.Username)
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) FormFlag(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "username is required", nil)
		return
	}

	open := h.service.ConsumeFormFlag(c.Request.Context(), username)
	response.Success(c, http.StatusOK, FormFlagResponse{OpenForm: open})
}
