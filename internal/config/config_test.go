package config

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderClient_ListSecrets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/services/srv-123/secret-files", r.URL.Path)
		assert.Equal(t, "Bearer render-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"secretFile": {"name": "serp_bulk_api_key", "content": "bulk-key\n"}, "cursor": "a"},
			{"secretFile": {"name": "serp_incremental_login", "content": "login"}, "cursor": "b"}
		]`))
	}))
	defer server.Close()

	client := NewRenderClient(&Config{Render: Render{BaseURL: server.URL + "/", APIKey: "render-key"}})

	secrets, err := client.ListSecrets("srv-123")
	require.NoError(t, err)
	assert.Equal(t, "bulk-key", secrets["serp_bulk_api_key"])
	assert.Equal(t, "login", secrets["serp_incremental_login"])
}

func TestRenderClient_ListSecretsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("unauthorized"))
	}))
	defer server.Close()

	client := NewRenderClient(&Config{Render: Render{BaseURL: server.URL}})

	_, err := client.ListSecrets("srv-123")
	assert.ErrorContains(t, err, "unauthorized")
}

func TestApplySerpSecrets(t *testing.T) {
	cfg := &Config{Serp: Serp{IncrementalLogin: "from-env"}}

	ApplySerpSecrets(cfg, map[string]string{
		"serp_bulk_api_key":         "bulk-key",
		"serp_incremental_login":    "from-render",
		"serp_incremental_password": "secret",
	})

	assert.Equal(t, "bulk-key", cfg.Serp.BulkAPIKey)
	assert.Equal(t, "from-env", cfg.Serp.IncrementalLogin, "variável de ambiente tem precedência")
	assert.Equal(t, "secret", cfg.Serp.IncrementalPassword)
	assert.True(t, cfg.Serp.HasBulkCredentials())
	assert.True(t, cfg.Serp.HasIncrementalCredentials())
}

func TestRankCheck_PacingDelay(t *testing.T) {
	rc := RankCheck{PacingDelaySeconds: 4, LongBatchPacingDelaySeconds: 5, LongBatchThreshold: 20}

	assert.Equal(t, 4*time.Second, rc.PacingDelay(20))
	assert.Equal(t, 5*time.Second, rc.PacingDelay(21))
}
