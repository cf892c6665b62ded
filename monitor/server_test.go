package monitor

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealthzReportsOK(t *testing.T) {
	s := New()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Mux().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestStreamUnknownRunReturnsNotFound(t *testing.T) {
	s := New()
	req := httptest.NewRequest(http.MethodGet, "/solve/stream?run_id=bogus", nil)
	rec := httptest.NewRecorder()
	s.Mux().ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRegisterPublishCloseDoesNotPanic(t *testing.T) {
	s := New()
	publish, closeRun := s.Register("run-1")
	publish(RunStartedEvent{RunID: "run-1", NFlights: 10})
	publish(SolverDoneEvent{Objective: 42})
	closeRun()
}
