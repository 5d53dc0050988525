package employee

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	employeeerrors "go-vms/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	lookupFn func(ctx context.Context, empID string) (EmployeeResponse, error)
}

func (f *fakeService) Lookup(ctx context.Context, empID string) (EmployeeResponse, error) {
	return f.lookupFn(ctx, empID)
}

func newEmployeeRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), NewHandler(svc))
	return r
}

func postLookup(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/employee/by-empid", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_ByEmpID_Found(t *testing.T) {
	svc := &fakeService{
		lookupFn: func(ctx context.Context, empID string) (EmployeeResponse, error) {
			assert.Equal(t, "EMP001", empID)
			return EmployeeResponse{Name: "Jane Carter", Department: "Sales", Email: "jane.carter@example.com"}, nil
		},
	}
	w := postLookup(newEmployeeRouter(svc), `{"emp_id":"EMP001"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Ok   bool             `json:"ok"`
		Data EmployeeResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Ok)
	assert.Equal(t, "Jane Carter", body.Data.Name)
	assert.Equal(t, "Sales", body.Data.Department)
}

func TestHandler_ByEmpID_NotFound(t *testing.T) {
	svc := &fakeService{
		lookupFn: func(ctx context.Context, empID string) (EmployeeResponse, error) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		},
	}
	w := postLookup(newEmployeeRouter(svc), `{"emp_id":"EMP999"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body struct {
		Ok    bool `json:"ok"`
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Ok)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
}

func TestHandler_ByEmpID_MissingID(t *testing.T) {
	called := false
	svc := &fakeService{
		lookupFn: func(ctx context.Context, empID string) (EmployeeResponse, error) {
			called = true
			return EmployeeResponse{}, nil
		},
	}
	w := postLookup(newEmployeeRouter(svc), `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called)
}
