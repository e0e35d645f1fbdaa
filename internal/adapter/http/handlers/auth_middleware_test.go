package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"frota_checklist/internal/adapter/http/handlers/mocks"
	"frota_checklist/internal/domain/entities"
	"frota_checklist/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(auth usecase.IAuthContext, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	chain := append([]gin.HandlerFunc{AuthMiddleware(auth)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		acc, ok := usecase.AccountFromContext(c.Request.Context())
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.String(http.StatusOK, acc.ID)
	})
	r.GET("/v1/private", chain...)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthContext(ctrl)
		r := newAuthRouter(auth)

		req := httptest.NewRequest(http.MethodGet, "/v1/private", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong scheme", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthContext(ctrl)
		r := newAuthRouter(auth)

		req := httptest.NewRequest(http.MethodGet, "/v1/private", nil)
		req.Header.Set("Authorization", "Basic abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthContext(ctrl)
		r := newAuthRouter(auth)

		auth.EXPECT().Resolve(gomock.Any(), "tok").Return(entities.Account{}, usecase.ErrInvalidToken)

		req := httptest.NewRequest(http.MethodGet, "/v1/private", nil)
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("disabled account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthContext(ctrl)
		r := newAuthRouter(auth)

		auth.EXPECT().Resolve(gomock.Any(), "tok").Return(entities.Account{}, usecase.ErrAccountDisabled)

		req := httptest.NewRequest(http.MethodGet, "/v1/private", nil)
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("profile store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthContext(ctrl)
		r := newAuthRouter(auth)

		auth.EXPECT().Resolve(gomock.Any(), "tok").Return(entities.Account{}, errors.New("timeout"))

		req := httptest.NewRequest(http.MethodGet, "/v1/private", nil)
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("account placed in context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthContext(ctrl)
		r := newAuthRouter(auth)

		auth.EXPECT().Resolve(gomock.Any(), "tok").Return(entities.Account{ID: "u1", Role: entities.UserRoleUser}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/private", nil)
		req.Header.Set("Authorization", "bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.String() != "u1" {
			t.Fatalf("expected 200 u1, got %d %q", w.Code, w.Body.String())
		}
	})
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non admin rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthContext(ctrl)
		r := newAuthRouter(auth, RequireAdmin())

		auth.EXPECT().Resolve(gomock.Any(), "tok").Return(entities.Account{ID: "u1", Role: entities.UserRoleUser}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/private", nil)
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("admin allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthContext(ctrl)
		r := newAuthRouter(auth, RequireAdmin())

		auth.EXPECT().Resolve(gomock.Any(), "tok").Return(entities.Account{ID: "a1", Role: entities.UserRoleAdmin}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/private", nil)
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("signs out the caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthContext(ctrl)
		h := NewAuthHandler(auth)

		r := gin.New()
		r.POST("/v1/auth/logout", AuthMiddleware(auth), h.Logout)

		auth.EXPECT().Resolve(gomock.Any(), "tok").Return(entities.Account{ID: "u1"}, nil)
		auth.EXPECT().SignOut(gomock.Any(), "u1").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("no session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthContext(ctrl)
		h := NewAuthHandler(auth)

		r := gin.New()
		r.POST("/v1/auth/logout", h.Logout)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
