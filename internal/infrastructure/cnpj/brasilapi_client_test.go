package cnpj

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"frota_checklist/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrasilAPIClient_Lookup(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/cnpj/v1/12345678000190", r.URL.Path)
			_, _ = w.Write([]byte(`{"razao_social":"OFICINA LTDA"}`))
		}))
		defer srv.Close()

		c := NewBrasilAPIClient(srv.URL+"/api/cnpj/v1/", srv.Client())
		raw, err := c.Lookup(context.Background(), "12345678000190")
		require.NoError(t, err)
		assert.JSONEq(t, `{"razao_social":"OFICINA LTDA"}`, string(raw))
	})

	t.Run("not found is permanent", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		c := NewBrasilAPIClient(srv.URL, srv.Client())
		_, err := c.Lookup(context.Background(), "00000000000000")
		assert.ErrorIs(t, err, interfaces.ErrCNPJNotFound)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("retries server errors", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		c := NewBrasilAPIClient(srv.URL, srv.Client())
		c.maxElapsed = 5 * time.Second
		_, err := c.Lookup(context.Background(), "12345678000190")
		require.NoError(t, err)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("invalid json", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		}))
		defer srv.Close()

		_, err := NewBrasilAPIClient(srv.URL, srv.Client()).Lookup(context.Background(), "12345678000190")
		assert.Error(t, err)
	})
}
