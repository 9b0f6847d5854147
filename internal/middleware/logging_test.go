package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// withObservedLog подменяет пакетный логгер на наблюдаемый до конца теста.
func withObservedLog(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	SetLogger(zap.New(core).Sugar())
	t.Cleanup(func() { SetLogger(zap.NewNop().Sugar()) })
	return logs
}

func TestWithLogging_RecordsRequestFields(t *testing.T) {
	logs := withObservedLog(t)

	h := WithLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false}`))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/archive-items/99", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	// ответ проксируется без искажений
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, `{"success":false}`, rr.Body.String())

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/api/archive-items/99", fields["uri"])
	assert.Equal(t, int64(http.StatusNotFound), fields["status"])
	assert.Equal(t, int64(len(`{"success":false}`)), fields["size"])
	assert.NotEmpty(t, fields["request_id"])
}

func TestWithLogging_DefaultStatusIsOK(t *testing.T) {
	logs := withObservedLog(t)

	// хендлер пишет тело без явного WriteHeader
	h := WithLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/archive-items", nil))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(http.StatusOK), entries[0].ContextMap()["status"])
}
