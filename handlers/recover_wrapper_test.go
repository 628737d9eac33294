package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecoverWrapper(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	logger := zap.New(core)

	wrapped := RecoverWrapper(logger, func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/shipments/ACME-REF-1001", nil)
	w := httptest.NewRecorder()
	wrapped(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	entries := logs.FilterMessage("panic recovered").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "boom", fields["panic"])
	require.Equal(t, "/shipments/ACME-REF-1001", fields["path"])
	require.NotEmpty(t, fields["stack"])
}

func TestRecoverWrapperPassThrough(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	logger := zap.New(core)

	wrapped := RecoverWrapper(logger, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	wrapped(w, httptest.NewRequest(http.MethodGet, "/risk", nil))

	require.Equal(t, http.StatusTeapot, w.Code)
	require.Zero(t, logs.Len())
}
