package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"frota_checklist/internal/adapter/http/handlers/mocks"
	"frota_checklist/internal/domain/entities"
	"frota_checklist/internal/usecase"
	"frota_checklist/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func multipartBody(t *testing.T, field string, files map[string][]byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for name, data := range files {
		part, err := mw.CreateFormFile(field, name)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, _ = part.Write(data)
	}
	for k, v := range fields {
		_ = mw.WriteField(k, v)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return body, mw.FormDataContentType()
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n0000")

func TestWizardHandler_Open(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("new checklist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reg := mocks.NewMockIWizardRegistry(ctrl)
		wiz := mocks.NewMockIWizard(ctrl)
		h := NewWizardHandler(reg)

		r := gin.New()
		r.POST("/v1/wizards", h.Open)

		reg.EXPECT().Open(gomock.Any(), "").Return(wiz, nil)
		wiz.EXPECT().Snapshot().Return(usecase.WizardSnapshot{SessionID: "w1", Step: usecase.StepData})

		req := httptest.NewRequest(http.MethodPost, "/v1/wizards", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["session_id"] != "w1" || body["step"] != float64(1) {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("existing checklist not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reg := mocks.NewMockIWizardRegistry(ctrl)
		h := NewWizardHandler(reg)

		r := gin.New()
		r.POST("/v1/wizards", h.Open)

		reg.EXPECT().Open(gomock.Any(), "c9").Return(nil, usecase.ErrChecklistNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/wizards", bytes.NewBufferString(`{"checklist_id":"c9"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("no session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reg := mocks.NewMockIWizardRegistry(ctrl)
		h := NewWizardHandler(reg)

		r := gin.New()
		r.POST("/v1/wizards", h.Open)

		reg.EXPECT().Open(gomock.Any(), "").Return(nil, usecase.ErrSessionRequired)

		req := httptest.NewRequest(http.MethodPost, "/v1/wizards", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestWizardHandler_Session(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", usecase.ErrWizardNotFound, http.StatusNotFound},
		{"other account", usecase.ErrWizardForbidden, http.StatusForbidden},
		{"closed", usecase.ErrWizardClosed, http.StatusGone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			reg := mocks.NewMockIWizardRegistry(ctrl)
			h := NewWizardHandler(reg)

			r := gin.New()
			r.GET("/v1/wizards/:wid", h.Get)

			reg.EXPECT().Get(gomock.Any(), "w1").Return(nil, tc.err)

			req := httptest.NewRequest(http.MethodGet, "/v1/wizards/w1", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
		})
	}
}

func TestWizardHandler_SubmitStep1(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reg := mocks.NewMockIWizardRegistry(ctrl)
		wiz := mocks.NewMockIWizard(ctrl)
		h := NewWizardHandler(reg)

		r := gin.New()
		r.POST("/v1/wizards/:wid/step1", h.SubmitStep1)

		reg.EXPECT().Get(gomock.Any(), "w1").Return(wiz, nil)
		wiz.EXPECT().SubmitStep1(gomock.Any(), gomock.Any()).Return(usecase.WizardSnapshot{}, errors.Join(usecase.ErrInvalidService, usecase.ErrInvalidKM))

		req := httptest.NewRequest(http.MethodPost, "/v1/wizards/w1/step1", bytes.NewBufferString(`{"service":" ","km":-1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("advances", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reg := mocks.NewMockIWizardRegistry(ctrl)
		wiz := mocks.NewMockIWizard(ctrl)
		h := NewWizardHandler(reg)

		r := gin.New()
		r.POST("/v1/wizards/:wid/step1", h.SubmitStep1)

		km := 1200.5
		reg.EXPECT().Get(gomock.Any(), "w1").Return(wiz, nil)
		wiz.EXPECT().SubmitStep1(gomock.Any(), usecase.Step1Input{
			Service:     "Revisao",
			KM:          &km,
			Responsavel: "Ana",
			VehicleID:   "v1",
			SupplierID:  "s1",
		}).Return(usecase.WizardSnapshot{SessionID: "w1", Step: usecase.StepDefects, ChecklistID: "c1"}, nil)

		payload := `{"service":" Revisao ","km":1200.5,"responsavel":"Ana","vehicle_id":"v1","supplier_id":"s1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/wizards/w1/step1", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["step"] != float64(2) || body["checklist_id"] != "c1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestWizardHandler_UpdateDefect(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid action", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reg := mocks.NewMockIWizardRegistry(ctrl)
		wiz := mocks.NewMockIWizard(ctrl)
		h := NewWizardHandler(reg)

		r := gin.New()
		r.PATCH("/v1/wizards/:wid/defects/:key", h.UpdateDefect)

		reg.EXPECT().Get(gomock.Any(), "w1").Return(wiz, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/wizards/w1/defects/freios", bytes.NewBufferString(`{"action":"explode"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("toggle problem", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reg := mocks.NewMockIWizardRegistry(ctrl)
		wiz := mocks.NewMockIWizard(ctrl)
		h := NewWizardHandler(reg)

		r := gin.New()
		r.PATCH("/v1/wizards/:wid/defects/:key", h.UpdateDefect)

		reg.EXPECT().Get(gomock.Any(), "w1").Return(wiz, nil)
		wiz.EXPECT().ToggleProblem("freios").Return(entities.Defect{Key: "freios", Checked: true, Problem: true}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/wizards/w1/defects/freios", bytes.NewBufferString(`{"action":"toggle_problem"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reg := mocks.NewMockIWizardRegistry(ctrl)
		wiz := mocks.NewMockIWizard(ctrl)
		h := NewWizardHandler(reg)

		r := gin.New()
		r.PATCH("/v1/wizards/:wid/defects/:key", h.UpdateDefect)

		reg.EXPECT().Get(gomock.Any(), "w1").Return(wiz, nil)
		wiz.EXPECT().SetDefectNotes("nope", "x").Return(entities.Defect{}, usecase.ErrDefectNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/wizards/w1/defects/nope", bytes.NewBufferString(`{"action":"notes","notes":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestWizardHandler_StagePhotos(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("sniffs content type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reg := mocks.NewMockIWizardRegistry(ctrl)
		wiz := mocks.NewMockIWizard(ctrl)
		h := NewWizardHandler(reg)

		r := gin.New()
		r.POST("/v1/wizards/:wid/photos", h.StagePhotos)

		reg.EXPECT().Get(gomock.Any(), "w1").Return(wiz, nil)
		wiz.EXPECT().StagePhotos(gomock.Any()).DoAndReturn(func(files []entities.UploadFile) (int, error) {
			if len(files) != 1 || files[0].Name != "front.png" || files[0].ContentType != "image/png" {
				t.Fatalf("unexpected files: %+v", files)
			}
			return 1, nil
		})
		wiz.EXPECT().Snapshot().Return(usecase.WizardSnapshot{SessionID: "w1", Step: usecase.StepPhotos})

		body, contentType := multipartBody(t, "files", map[string][]byte{"front.png": pngHeader}, nil)
		req := httptest.NewRequest(http.MethodPost, "/v1/wizards/w1/photos", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["accepted"] != float64(1) {
			t.Fatalf("unexpected body: %v", resp)
		}
	})

	t.Run("nothing accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reg := mocks.NewMockIWizardRegistry(ctrl)
		wiz := mocks.NewMockIWizard(ctrl)
		h := NewWizardHandler(reg)

		r := gin.New()
		r.POST("/v1/wizards/:wid/photos", h.StagePhotos)

		reg.EXPECT().Get(gomock.Any(), "w1").Return(wiz, nil)
		wiz.EXPECT().StagePhotos(gomock.Any()).Return(0, usecase.ErrNoFilesAccepted)

		body, contentType := multipartBody(t, "files", map[string][]byte{"notes.txt": []byte("hello")}, nil)
		req := httptest.NewRequest(http.MethodPost, "/v1/wizards/w1/photos", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestWizardHandler_StageBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("fields only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reg := mocks.NewMockIWizardRegistry(ctrl)
		wiz := mocks.NewMockIWizard(ctrl)
		h := NewWizardHandler(reg)

		r := gin.New()
		r.POST("/v1/wizards/:wid/budget", h.StageBudget)

		reg.EXPECT().Get(gomock.Any(), "w1").Return(wiz, nil)
		wiz.EXPECT().SetBudget(gomock.Any(), gomock.Any()).DoAndReturn(func(total *float64, notes *string) error {
			if total == nil || *total != 350.9 || notes == nil || *notes != "pecas" {
				t.Fatalf("unexpected budget: %v %v", total, notes)
			}
			return nil
		})
		wiz.EXPECT().Snapshot().Return(usecase.WizardSnapshot{SessionID: "w1"})

		body, contentType := multipartBody(t, "files", nil, map[string]string{"budget_total": "350.9", "budget_notes": "pecas"})
		req := httptest.NewRequest(http.MethodPost, "/v1/wizards/w1/budget", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("negative total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reg := mocks.NewMockIWizardRegistry(ctrl)
		wiz := mocks.NewMockIWizard(ctrl)
		h := NewWizardHandler(reg)

		r := gin.New()
		r.POST("/v1/wizards/:wid/budget", h.StageBudget)

		reg.EXPECT().Get(gomock.Any(), "w1").Return(wiz, nil)
		wiz.EXPECT().SetBudget(gomock.Any(), gomock.Any()).Return(usecase.ErrInvalidBudgetTotal)

		req := httptest.NewRequest(http.MethodPost, "/v1/wizards/w1/budget", bytes.NewBufferString(`{"budget_total":-1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestWizardHandler_RemoveStaged(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reg := mocks.NewMockIWizardRegistry(ctrl)
		wiz := mocks.NewMockIWizard(ctrl)
		h := NewWizardHandler(reg)

		r := gin.New()
		r.DELETE("/v1/wizards/:wid/photos/:index", h.RemoveStagedPhoto)

		reg.EXPECT().Get(gomock.Any(), "w1").Return(wiz, nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/wizards/w1/photos/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reg := mocks.NewMockIWizardRegistry(ctrl)
		wiz := mocks.NewMockIWizard(ctrl)
		h := NewWizardHandler(reg)

		r := gin.New()
		r.DELETE("/v1/wizards/:wid/budget/:index", h.RemoveStagedBudget)

		reg.EXPECT().Get(gomock.Any(), "w1").Return(wiz, nil)
		wiz.EXPECT().RemoveStagedBudget(3).Return(usecase.ErrStagedFileNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/wizards/w1/budget/3", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestWizardHandler_UploadFuelPhoto(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reg := mocks.NewMockIWizardRegistry(ctrl)
		wiz := mocks.NewMockIWizard(ctrl)
		h := NewWizardHandler(reg)

		r := gin.New()
		r.PUT("/v1/wizards/:wid/fuel/:kind", h.UploadFuelPhoto)

		reg.EXPECT().Get(gomock.Any(), "w1").Return(wiz, nil)

		body, contentType := multipartBody(t, "other", map[string][]byte{"a.png": pngHeader}, nil)
		req := httptest.NewRequest(http.MethodPut, "/v1/wizards/w1/fuel/entry", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("uploaded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reg := mocks.NewMockIWizardRegistry(ctrl)
		wiz := mocks.NewMockIWizard(ctrl)
		h := NewWizardHandler(reg)

		r := gin.New()
		r.PUT("/v1/wizards/:wid/fuel/:kind", h.UploadFuelPhoto)

		reg.EXPECT().Get(gomock.Any(), "w1").Return(wiz, nil)
		wiz.EXPECT().UploadFuelPhoto(gomock.Any(), entities.FuelKind("exit"), gomock.Any()).Return(usecase.WizardSnapshot{SessionID: "w1"}, nil)

		body, contentType := multipartBody(t, "file", map[string][]byte{"gauge.png": pngHeader}, nil)
		req := httptest.NewRequest(http.MethodPut, "/v1/wizards/w1/fuel/exit", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestWizardHandler_UpdateNotes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	reg := mocks.NewMockIWizardRegistry(ctrl)
	wiz := mocks.NewMockIWizard(ctrl)
	h := NewWizardHandler(reg)

	r := gin.New()
	r.PUT("/v1/wizards/:wid/notes", h.UpdateNotes)

	reg.EXPECT().Get(gomock.Any(), "w1").Return(wiz, nil)
	wiz.EXPECT().UpdateNotes("pneu careca").Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/v1/wizards/w1/notes", bytes.NewBufferString(`{"notes":"pneu careca"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", w.Code)
	}
}

func TestWizardHandler_SearchVehicles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("superseded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reg := mocks.NewMockIWizardRegistry(ctrl)
		wiz := mocks.NewMockIWizard(ctrl)
		h := NewWizardHandler(reg)

		r := gin.New()
		r.GET("/v1/wizards/:wid/vehicles", h.SearchVehicles)

		reg.EXPECT().Get(gomock.Any(), "w1").Return(wiz, nil)
		wiz.EXPECT().SearchVehicles(gomock.Any(), "ab").Return(nil, usecase.ErrStaleSearch)

		req := httptest.NewRequest(http.MethodGet, "/v1/wizards/w1/vehicles?q=ab", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("results", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reg := mocks.NewMockIWizardRegistry(ctrl)
		wiz := mocks.NewMockIWizard(ctrl)
		h := NewWizardHandler(reg)

		r := gin.New()
		r.GET("/v1/wizards/:wid/vehicles", h.SearchVehicles)

		reg.EXPECT().Get(gomock.Any(), "w1").Return(wiz, nil)
		wiz.EXPECT().SearchVehicles(gomock.Any(), "abc").Return([]entities.Vehicle{{ID: "v1", Plate: "ABC1D23"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/wizards/w1/vehicles?q=abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestWizardHandler_Finalize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"locked", usecase.ErrChecklistLocked, http.StatusConflict},
		{"modified elsewhere", interfaces.ErrChecklistModified, http.StatusConflict},
		{"not created", usecase.ErrChecklistNotCreated, http.StatusConflict},
		{"partial upload", &usecase.PartialUploadError{Failed: []entities.UploadFile{{Name: "a.jpg"}}, Err: errors.New("timeout")}, http.StatusBadGateway},
		{"store failure", errors.New("ConditionalCheckFailed"), http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			reg := mocks.NewMockIWizardRegistry(ctrl)
			wiz := mocks.NewMockIWizard(ctrl)
			h := NewWizardHandler(reg)

			r := gin.New()
			r.POST("/v1/wizards/:wid/finalize", h.Finalize)

			reg.EXPECT().Get(gomock.Any(), "w1").Return(wiz, nil)
			wiz.EXPECT().Finalize(gomock.Any()).Return(usecase.WizardSnapshot{}, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/wizards/w1/finalize", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
		})
	}

	t.Run("finalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reg := mocks.NewMockIWizardRegistry(ctrl)
		wiz := mocks.NewMockIWizard(ctrl)
		h := NewWizardHandler(reg)

		r := gin.New()
		r.POST("/v1/wizards/:wid/finalize", h.Finalize)

		reg.EXPECT().Get(gomock.Any(), "w1").Return(wiz, nil)
		wiz.EXPECT().Finalize(gomock.Any()).Return(usecase.WizardSnapshot{
			SessionID: "w1",
			Status:    entities.ChecklistStatusFinalizado,
			ReadOnly:  true,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/wizards/w1/finalize", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["read_only"] != true {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestWizardHandler_Close(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	reg := mocks.NewMockIWizardRegistry(ctrl)
	h := NewWizardHandler(reg)

	r := gin.New()
	r.DELETE("/v1/wizards/:wid", h.Close)

	reg.EXPECT().Close(gomock.Any(), "w1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/wizards/w1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
