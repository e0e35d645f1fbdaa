package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"frota_checklist/internal/adapter/http/handlers/mocks"
	"frota_checklist/internal/domain/entities"
	"frota_checklist/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSupplierHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupplierUseCase(ctrl)
		h := NewSupplierHandler(uc)

		r := gin.New()
		r.GET("/v1/suppliers", h.List)

		uc.EXPECT().List(gomock.Any()).Return([]entities.Supplier{
			{ID: "s1", CNPJ: "12345678000195", CorporateName: "Oficina Central LTDA", TradeName: "Central"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/suppliers", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["cnpj_formatted"] != "12.345.678/0001-95" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("search", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupplierUseCase(ctrl)
		h := NewSupplierHandler(uc)

		r := gin.New()
		r.GET("/v1/suppliers", h.List)

		uc.EXPECT().Search(gomock.Any(), "cent").Return([]entities.Supplier{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/suppliers?q=+cent+", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty list, got %s", w.Body.String())
		}
	})
}

func TestSupplierHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing corporate name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupplierUseCase(ctrl)
		h := NewSupplierHandler(uc)

		r := gin.New()
		r.POST("/v1/suppliers", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/suppliers", bytes.NewBufferString(`{"cnpj":"12345678000195"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate cnpj", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupplierUseCase(ctrl)
		h := NewSupplierHandler(uc)

		r := gin.New()
		r.POST("/v1/suppliers", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Supplier{}, usecase.ErrSupplierAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/suppliers", bytes.NewBufferString(`{"cnpj":"12.345.678/0001-95","corporate_name":"Oficina"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupplierUseCase(ctrl)
		h := NewSupplierHandler(uc)

		r := gin.New()
		r.POST("/v1/suppliers", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Supplier{ID: "s1", CNPJ: "12345678000195", CorporateName: "Oficina"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/suppliers", bytes.NewBufferString(`{"cnpj":"12.345.678/0001-95","corporate_name":"Oficina"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestSupplierHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISupplierUseCase(ctrl)
	h := NewSupplierHandler(uc)

	r := gin.New()
	r.DELETE("/v1/suppliers/:id", h.Delete)

	uc.EXPECT().Delete(gomock.Any(), "s1").Return(usecase.ErrSupplierNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/v1/suppliers/s1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestSupplierHandler_LookupCNPJ(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid", usecase.ErrInvalidCNPJ, http.StatusBadRequest},
		{"unknown", usecase.ErrCNPJNotFound, http.StatusNotFound},
		{"not configured", usecase.ErrCNPJLookupUnavailable, http.StatusServiceUnavailable},
		{"found", nil, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockISupplierUseCase(ctrl)
			h := NewSupplierHandler(uc)

			r := gin.New()
			r.GET("/v1/suppliers/cnpj/:cnpj", h.LookupCNPJ)

			uc.EXPECT().LookupCNPJ(gomock.Any(), "12345678000195").Return(entities.CNPJLookup{CNPJ: "12345678000195"}, tc.err)

			req := httptest.NewRequest(http.MethodGet, "/v1/suppliers/cnpj/12345678000195", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
		})
	}
}
