package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"frota_checklist/internal/app"
	"frota_checklist/internal/domain/entities"
	"frota_checklist/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *app.Container) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		StorageDriver:    config.StorageMemory,
		BlobDriver:       config.BlobMemory,
		S3Bucket:         "checklists",
		SignedURLTTL:     time.Hour,
		AuthJWTSecret:    "test-secret",
		WizardIdleTTL:    time.Minute,
		NotesDebounce:    10 * time.Millisecond,
		DraftSaveTimeout: time.Second,
	}
	c, err := app.Build(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return NewRouter(c), c
}

func bearer(t *testing.T, c *app.Container, id string, role entities.UserRole) string {
	t.Helper()
	token, err := c.Verifier.Issue(entities.Account{ID: id, Name: id, Email: id + "@frota.test", Role: role}, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(r http.Handler, method, path, auth string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Public(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/v1/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())

	w = doJSON(r, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_SessionRequired(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/v1/checklists", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/v1/wizards", "Bearer not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_AdminRoutes(t *testing.T) {
	r, c := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/v1/admin/users", bearer(t, c, "u1", entities.UserRoleUser), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodGet, "/v1/admin/users", bearer(t, c, "a1", entities.UserRoleAdmin), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_WizardFlow(t *testing.T) {
	r, c := newTestRouter(t)
	auth := bearer(t, c, "u1", entities.UserRoleUser)

	w := doJSON(r, http.MethodPost, "/v1/vehicles", auth, map[string]any{"plate": "abc1d23", "brand": "Fiat", "model": "Strada"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var vehicle struct {
		ID    string `json:"id"`
		Plate string `json:"plate"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vehicle))
	assert.Equal(t, "ABC1D23", vehicle.Plate)

	w = doJSON(r, http.MethodPost, "/v1/suppliers", auth, map[string]any{"cnpj": "11.222.333/0001-81", "corporate_name": "Oficina Central LTDA"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var supplier struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &supplier))

	w = doJSON(r, http.MethodPost, "/v1/wizards", auth, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var wiz struct {
		SessionID string `json:"session_id"`
		Step      int    `json:"step"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &wiz))
	assert.Equal(t, 1, wiz.Step)

	// another account cannot use the session
	w = doJSON(r, http.MethodGet, "/v1/wizards/"+wiz.SessionID, bearer(t, c, "u2", entities.UserRoleUser), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodPost, "/v1/wizards/"+wiz.SessionID+"/step1", auth, map[string]any{
		"service":     "Revisao 10.000 km",
		"km":          10250,
		"responsavel": "Ana",
		"vehicle_id":  vehicle.ID,
		"supplier_id": supplier.ID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var step struct {
		Step        int    `json:"step"`
		ChecklistID string `json:"checklist_id"`
		SeqLabel    string `json:"seq_label"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &step))
	assert.Equal(t, 2, step.Step)
	assert.NotEmpty(t, step.ChecklistID)
	assert.Equal(t, "CHECK-000001", step.SeqLabel)

	w = doJSON(r, http.MethodGet, "/v1/checklists", auth, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, step.ChecklistID, list[0].ID)
	assert.Equal(t, string(entities.ChecklistStatusEmAndamento), list[0].Status)

	w = doJSON(r, http.MethodDelete, "/v1/wizards/"+wiz.SessionID, auth, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodGet, "/v1/wizards/"+wiz.SessionID, auth, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodDelete, "/v1/checklists/"+step.ChecklistID, auth, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
