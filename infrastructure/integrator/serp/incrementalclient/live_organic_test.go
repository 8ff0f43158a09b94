package incrementalclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serpdomain "github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serp/domain"
)

const livePayload = `{
	"status_code": 20000,
	"status_message": "Ok.",
	"cost": 0.002,
	"tasks": [{
		"status_code": 20000,
		"status_message": "Ok.",
		"cost": 0.002,
		"result": [{"items": [
			{"type": "featured_snippet", "rank_group": 1, "rank_absolute": 1, "domain": "target.com", "url": "https://target.com/snippet"},
			{"type": "organic", "rank_group": 1, "rank_absolute": 2, "domain": "competitor.com", "url": "https://competitor.com"},
			{"type": "organic", "rank_group": 2, "rank_absolute": 3, "domain": "www.target.com", "url": "https://www.target.com/"}
		]}]
	}]
}`

func TestIncrementalClient_LiveOrganic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/serp/google/organic/live/regular", r.URL.Path)

		login, password, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "user", login)
		assert.Equal(t, "pass", password)

		var tasks []Task
		require.NoError(t, json.NewDecoder(r.Body).Decode(&tasks))
		require.Len(t, tasks, 1)
		assert.Equal(t, Task{Keyword: "shoes", LocationCode: 2840, LanguageCode: "en", Depth: 20}, tasks[0])

		_, _ = w.Write([]byte(livePayload))
	}))
	defer server.Close()

	client := NewClient(server.URL, "user", "pass", time.Second)

	resp, err := client.LiveOrganic(context.Background(), Task{Keyword: "shoes", LocationCode: 2840, LanguageCode: "en", Depth: 20})
	require.NoError(t, err)

	organic := resp.OrganicResults()
	require.Len(t, organic, 2)
	assert.Equal(t, "https://www.target.com/", organic[1].URL)
	assert.Equal(t, 2, organic[1].Position)
	assert.InDelta(t, 0.002, resp.TotalCost(), 1e-9)
}

func TestIncrementalClient_LiveOrganicErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected serpdomain.ErrorKind
	}{
		{"http unauthorized", http.StatusUnauthorized, `{"status_code": 40100, "status_message": "You are not authorized"}`, serpdomain.ErrorKindAuth},
		{"ip not whitelisted", http.StatusUnauthorized, `{"status_code": 40104, "status_message": "Please visit the API access page to whitelist your IP"}`, serpdomain.ErrorKindIPNotWhitelisted},
		{"rate limited body", http.StatusOK, `{"status_code": 40202, "status_message": "Rate limit"}`, serpdomain.ErrorKindRateLimited},
		{"http too many requests", http.StatusTooManyRequests, ``, serpdomain.ErrorKindRateLimited},
		{"task error", http.StatusOK, `{"status_code": 20000, "tasks": [{"status_code": 40501, "status_message": "Invalid Field: 'location_code'"}]}`, serpdomain.ErrorKindTask},
		{"no tasks", http.StatusOK, `{"status_code": 20000, "tasks": []}`, serpdomain.ErrorKindMalformedResponse},
		{"malformed", http.StatusOK, `not json`, serpdomain.ErrorKindMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, "user", "pass", time.Second)
			_, err := client.LiveOrganic(context.Background(), Task{Keyword: "shoes", Depth: 10})

			var providerErr *serpdomain.ProviderError
			require.True(t, errors.As(err, &providerErr))
			assert.Equal(t, tt.expected, providerErr.Kind)
		})
	}
}

func TestIncrementalClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(livePayload))
	}))
	defer server.Close()

	client := NewClient(server.URL, "user", "pass", 20*time.Millisecond)
	_, err := client.LiveOrganic(context.Background(), Task{Keyword: "shoes", Depth: 10})

	var providerErr *serpdomain.ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, serpdomain.ErrorKindTimeout, providerErr.Kind)
}
