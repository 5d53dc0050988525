package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	autherrors "go-vms/internal/auth/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeAuthService struct {
	loginFn         func(ctx context.Context, username, password string) (LoginResponse, error)
	flagSetFor      []string
	flagConsumeResp bool
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (LoginResponse, error) {
	return f.loginFn(ctx, username, password)
}

func (f *fakeAuthService) SetFormFlag(ctx context.Context, username string) {
	f.flagSetFor = append(f.flagSetFor, username)
}

func (f *fakeAuthService) ConsumeFormFlag(ctx context.Context, username string) bool {
	return f.flagConsumeResp
}

func newAuthRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), NewHandler(svc))
	return r
}

func postLogin(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_Login_OK(t *testing.T) {
	svc := &fakeAuthService{
		loginFn: func(ctx context.Context, username, password string) (LoginResponse, error) {
			return LoginResponse{Username: username}, nil
		},
	}
	w := postLogin(newAuthRouter(svc), "/api/v1/login", `{"username":"reception","password":"reception"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Ok   bool          `json:"ok"`
		Data LoginResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Ok)
	assert.Equal(t, "reception", body.Data.Username)
	assert.Empty(t, svc.flagSetFor)
}

func TestHandler_Login_QRArmsFormFlag(t *testing.T) {
	svc := &fakeAuthService{
		loginFn: func(ctx context.Context, username, password string) (LoginResponse, error) {
			return LoginResponse{Username: username}, nil
		},
	}
	w := postLogin(newAuthRouter(svc), "/api/v1/login?from=qr", `{"username":"reception","password":"reception"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"reception"}, svc.flagSetFor)
}

func TestHandler_Login_BadCredentials(t *testing.T) {
	svc := &fakeAuthService{
		loginFn: func(ctx context.Context, username, password string) (LoginResponse, error) {
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		},
	}
	w := postLogin(newAuthRouter(svc), "/api/v1/login?from=qr", `{"username":"reception","password":"nope"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, svc.flagSetFor)

	var body struct {
		Ok    bool `json:"ok"`
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Ok)
	assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
}

func TestHandler_Login_MissingFields(t *testing.T) {
	called := false
	svc := &fakeAuthService{
		loginFn: func(ctx context.Context, username, password string) (LoginResponse, error) {
			called = true
			return LoginResponse{}, nil
		},
	}
	w := postLogin(newAuthRouter(svc), "/api/v1/login", `{"username":"reception"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called)
}

func TestHandler_FormFlag(t *testing.T) {
	svc := &fakeAuthService{flagConsumeResp: true}
	router := newAuthRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/login/form-flag?username=reception", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Ok   bool             `json:"ok"`
		Data FormFlagResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Data.OpenForm)
}

func TestHandler_FormFlag_MissingUsername(t *testing.T) {
	svc := &fakeAuthService{flagConsumeResp: true}
	router := newAuthRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/login/form-flag", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
