package controller_test

import (
	"net/http"
	"net/http/httptest"
	"qrgen/pkg/controller"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireCORSHeaders(t *testing.T, h http.Header) {
	t.Helper()

	require.Equal(t, "*", h.Get("Access-Control-Allow-Origin"))
	require.NotEmpty(t, h.Get("Access-Control-Allow-Headers"))
	require.NotEmpty(t, h.Get("Access-Control-Allow-Methods"))
	require.Contains(t, h.Get("Access-Control-Expose-Headers"), "Content-Disposition")
}

func TestWithCORS_Preflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/v1/qr", nil)
	rec := httptest.NewRecorder()
	controller.WithCORS(next).ServeHTTP(rec, req)

	require.False(t, called, "next handler should not be called for OPTIONS preflight")
	res := rec.Result()
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	requireCORSHeaders(t, res.Header)
}

func TestWithCORS_NormalRequest(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/qr", nil)
	rec := httptest.NewRecorder()
	controller.WithCORS(next).ServeHTTP(rec, req)

	require.True(t, called)
	res := rec.Result()
	require.Equal(t, http.StatusTeapot, res.StatusCode)
	requireCORSHeaders(t, res.Header)
}
