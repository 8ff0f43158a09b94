package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/rank-tracker-api/internal/api/handler/router"
	"github.com/vfg2006/rank-tracker-api/pkg/middleware"
)

type fakeSyncJob struct {
	triggered int
	running   bool
}

func (f *fakeSyncJob) TriggerManualSync() bool {
	if f.running {
		return false
	}
	f.triggered++
	return true
}

func (f *fakeSyncJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": f.running}
}

func adminRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, adminClaims))
}

func TestCronJobs(t *testing.T) {
	job := &fakeSyncJob{}
	rt := router.New(router.WithRoutes(CronJobs(CronJobServices{RankTrackingSyncService: job})...))

	tests := []struct {
		name           string
		method         string
		target         string
		expectedStatus int
	}{
		{"executa rank-tracking", http.MethodPost, "/v1/cron/rank-tracking/run", http.StatusAccepted},
		{"executa todas", http.MethodPost, "/v1/cron/all/run", http.StatusAccepted},
		{"tipo inválido", http.MethodPost, "/v1/cron/meta/run", http.StatusBadRequest},
		{"status", http.MethodGet, "/v1/cron/status", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, adminRequest(tt.method, tt.target))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}

	assert.Equal(t, 2, job.triggered)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, adminRequest(http.MethodGet, "/v1/cron/status"))

	var status map[string]map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.False(t, status["rank-tracking"]["sync_running"])
}

func TestHealthcheck(t *testing.T) {
	rt := router.New(router.WithRoutes(Healthcheck(nil)...))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
