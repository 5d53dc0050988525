package visitor

import (
	"net/http"

	"go-vms/internal/shared/apperror"
	"go-vms/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

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

func writeBindingError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterVisitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) Edit(c *gin.Context) {
	var req EditVisitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	if err := h.service.Edit(c.Request.Context(), req); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil)
}

func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	if err := h.service.Checkout(c.Request.Context(), req.ID); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil)
}

func (h *Handler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context(), listQueryFromRequest(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) OpenByContact(c *gin.Context) {
	resp, err := h.service.OpenByContact(c.Request.Context(), c.Query("contact_no"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Export(c *gin.Context) {
	f, err := h.service.Export(c.Request.Context(), listQueryFromRequest(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="visitors.xlsx"`)
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		// Headers are already out; nothing left to do but log.
		_ = c.Error(err)
	}
}

func listQueryFromRequest(c *gin.Context) ListQuery {
	return ListQuery{
		TodayOnly:     c.Query("today") == "true",
		Name:          c.Query("name"),
		ContactNo:     c.Query("contact_no"),
		ContactPerson: c.Query("contact_person"),
		FromDate:      c.Query("from"),
		ToDate:        c.Query("to"),
	}
}
