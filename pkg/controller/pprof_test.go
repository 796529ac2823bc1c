package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestMountPprof(t *testing.T) {
	mux := http.NewServeMux()
	controller.MountPprof(mux, "/debug/pprof/")

	for _, path := range []string{"/debug/pprof/", "/debug/pprof/cmdline", "/debug/pprof/heap"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/elsewhere", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
