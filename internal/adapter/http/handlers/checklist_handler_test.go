package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"frota_checklist/internal/adapter/http/handlers/mocks"
	"frota_checklist/internal/domain/entities"
	"frota_checklist/internal/usecase"
	"frota_checklist/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestChecklistHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChecklistUseCase(ctrl)
		h := NewChecklistHandler(uc, mocks.NewMockIReportUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/checklists", h.List)

		req := httptest.NewRequest(http.MethodGet, "/v1/checklists?from=01/02/2024", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("filters forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChecklistUseCase(ctrl)
		h := NewChecklistHandler(uc, mocks.NewMockIReportUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/checklists", h.List)

		seq := int64(7)
		uc.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, f entities.ChecklistFilter) ([]entities.Checklist, error) {
			if f.Status != entities.ChecklistStatusRascunho || f.Search != "abc" || f.From == nil || f.To != nil {
				t.Fatalf("unexpected filter: %+v", f)
			}
			return []entities.Checklist{{ID: "c1", Seq: &seq, Status: entities.ChecklistStatusRascunho}}, nil
		})

		req := httptest.NewRequest(http.MethodGet, "/v1/checklists?status=rascunho&q=abc&from=2024-01-01", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if len(body) != 1 || body[0]["seq_label"] != "CHECK-000007" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChecklistUseCase(ctrl)
		h := NewChecklistHandler(uc, mocks.NewMockIReportUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/checklists", h.List)

		uc.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrInvalidStatus)

		req := httptest.NewRequest(http.MethodGet, "/v1/checklists?status=foo", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestChecklistHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChecklistUseCase(ctrl)
		h := NewChecklistHandler(uc, mocks.NewMockIReportUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/checklists/:id", h.Get)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Checklist{}, usecase.ErrChecklistNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/checklists/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("remote failure keeps message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChecklistUseCase(ctrl)
		h := NewChecklistHandler(uc, mocks.NewMockIReportUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/checklists/:id", h.Get)

		uc.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Checklist{}, errors.New("provisioned throughput exceeded"))

		req := httptest.NewRequest(http.MethodGet, "/v1/checklists/c1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var body pkg.HTTPError
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Code != "STORE_ERROR" || body.Details != "provisioned throughput exceeded" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChecklistUseCase(ctrl)
		h := NewChecklistHandler(uc, mocks.NewMockIReportUseCase(ctrl))
		h.now = func() time.Time { return time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC) }

		r := gin.New()
		r.GET("/v1/checklists/:id", h.Get)

		uc.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Checklist{
			ID:        "c1",
			Status:    entities.ChecklistStatusEmAndamento,
			CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/checklists/c1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["days_open"] != float64(10) {
			t.Fatalf("expected days_open 10, got %v", body["days_open"])
		}
	})
}

func TestChecklistHandler_PDF(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("attachment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reports := mocks.NewMockIReportUseCase(ctrl)
		h := NewChecklistHandler(mocks.NewMockIChecklistUseCase(ctrl), reports)

		r := gin.New()
		r.GET("/v1/checklists/:id/pdf", h.PDF)

		reports.EXPECT().Export(gomock.Any(), "c1").Return(usecase.ReportFile{
			Filename:    "checklist-ABC1D23-2024-01-01.pdf",
			ContentType: "application/pdf",
			Content:     []byte("%PDF-1.3"),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/checklists/c1/pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="checklist-ABC1D23-2024-01-01.pdf"` {
			t.Fatalf("unexpected disposition %q", got)
		}
		if w.Header().Get("Content-Type") != "application/pdf" || !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
			t.Fatalf("unexpected content")
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reports := mocks.NewMockIReportUseCase(ctrl)
		h := NewChecklistHandler(mocks.NewMockIChecklistUseCase(ctrl), reports)

		r := gin.New()
		r.GET("/v1/checklists/:id/pdf", h.PDF)

		reports.EXPECT().Export(gomock.Any(), "c1").Return(usecase.ReportFile{}, usecase.ErrChecklistNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/checklists/c1/pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestChecklistHandler_UpdateNotes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing notes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChecklistUseCase(ctrl)
		h := NewChecklistHandler(uc, mocks.NewMockIReportUseCase(ctrl))

		r := gin.New()
		r.PATCH("/v1/checklists/:id/notes", h.UpdateNotes)

		req := httptest.NewRequest(http.MethodPatch, "/v1/checklists/c1/notes", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty notes allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChecklistUseCase(ctrl)
		h := NewChecklistHandler(uc, mocks.NewMockIReportUseCase(ctrl))

		r := gin.New()
		r.PATCH("/v1/checklists/:id/notes", h.UpdateNotes)

		uc.EXPECT().UpdateNotes(gomock.Any(), "c1", "").Return(entities.Checklist{ID: "c1"}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/checklists/c1/notes", bytes.NewBufferString(`{"notes":""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("locked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChecklistUseCase(ctrl)
		h := NewChecklistHandler(uc, mocks.NewMockIReportUseCase(ctrl))

		r := gin.New()
		r.PATCH("/v1/checklists/:id/notes", h.UpdateNotes)

		uc.EXPECT().UpdateNotes(gomock.Any(), "c1", "x").Return(entities.Checklist{}, usecase.ErrChecklistLocked)

		req := httptest.NewRequest(http.MethodPatch, "/v1/checklists/c1/notes", bytes.NewBufferString(`{"notes":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestChecklistHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("admin required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChecklistUseCase(ctrl)
		h := NewChecklistHandler(uc, mocks.NewMockIReportUseCase(ctrl))

		r := gin.New()
		r.DELETE("/v1/checklists/:id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), "c1").Return(usecase.ErrAdminRequired)

		req := httptest.NewRequest(http.MethodDelete, "/v1/checklists/c1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChecklistUseCase(ctrl)
		h := NewChecklistHandler(uc, mocks.NewMockIReportUseCase(ctrl))

		r := gin.New()
		r.DELETE("/v1/checklists/:id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), "c1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/checklists/c1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
