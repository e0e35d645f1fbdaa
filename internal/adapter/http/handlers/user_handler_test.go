package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"frota_checklist/internal/adapter/http/handlers/mocks"
	"frota_checklist/internal/domain/entities"
	"frota_checklist/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestUserHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIUserUseCase(ctrl)
	h := NewUserHandler(uc)

	r := gin.New()
	r.GET("/v1/admin/users", h.List)

	uc.EXPECT().List(gomock.Any(), "ana").Return([]entities.User{{ID: "u1", Name: "Ana", Role: entities.UserRoleUser}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/users?q=ana", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestUserHandler_SetRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/users/:id/role", h.SetRole)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/users/u1/role", bytes.NewBufferString(`{"role":"root"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("own role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/users/:id/role", h.SetRole)

		uc.EXPECT().SetRole(gomock.Any(), "u1", entities.UserRoleUser).Return(entities.User{}, usecase.ErrCannotChangeOwnRole)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/users/u1/role", bytes.NewBufferString(`{"role":"user"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("promoted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/users/:id/role", h.SetRole)

		uc.EXPECT().SetRole(gomock.Any(), "u2", entities.UserRoleAdmin).Return(entities.User{ID: "u2", Role: entities.UserRoleAdmin}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/users/u2/role", bytes.NewBufferString(`{"role":"admin"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestUserHandler_Disable(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIUserUseCase(ctrl)
	h := NewUserHandler(uc)

	r := gin.New()
	r.POST("/v1/admin/users/:id/disable", h.Disable)

	uc.EXPECT().Disable(gomock.Any(), "u3").Return(entities.User{}, usecase.ErrUserNotFound)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/users/u3/disable", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
