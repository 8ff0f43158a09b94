package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/justinas/alice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/rank-tracker-api/internal/config"
	"github.com/vfg2006/rank-tracker-api/internal/domain"
	"github.com/vfg2006/rank-tracker-api/internal/usecases/authenticating"
	"github.com/vfg2006/rank-tracker-api/pkg/apiErrors"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthAndRoleMiddleware(t *testing.T) {
	auth := authenticating.NewService(&config.Config{Auth: config.Auth{Secret: "test-secret"}})

	adminToken, err := auth.IssueToken("cron", domain.RoleAdmin, nil, time.Hour)
	require.NoError(t, err)
	clientID := "client-1"
	clientToken, err := auth.IssueToken("dashboard", domain.RoleClient, &clientID, time.Hour)
	require.NoError(t, err)

	chain := alice.New(AuthMiddleware(auth), AdminOrOperator()).Then(okHandler())

	tests := []struct {
		name           string
		path           string
		header         string
		expectedStatus int
	}{
		{"rota pública", "/healthcheck", "", http.StatusOK},
		{"sem header", "/v1/rankings/check", "", http.StatusUnauthorized},
		{"sem bearer", "/v1/rankings/check", adminToken, http.StatusUnauthorized},
		{"token inválido", "/v1/rankings/check", "Bearer abc", http.StatusUnauthorized},
		{"perfil sem permissão", "/v1/rankings/check", "Bearer " + clientToken, http.StatusForbidden},
		{"administrador", "/v1/rankings/check", "Bearer " + adminToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			chain.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/v1/rankings/batch", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/rankings/history", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggingAndPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	handler := alice.New(LogPanicMiddleware(), LoggingMiddleware()).Then(panicking)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rankings/history", nil))

	assert.Equal(t, apiErrors.StatusFor(apiErrors.ErrInternalServer), rec.Code)
	assert.NotEmpty(t, rec.Header().Get(HeaderCorrelationID))
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}
