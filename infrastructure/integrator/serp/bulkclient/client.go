package bulkclient

import (
	"context"
	"net/http"
	"time"
)

const ProviderName = "bulk-provider"

type Client interface {
	Search(ctx context.Context, params SearchParams) (*SearchResponse, error)
}

type BulkClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(baseURL, apiKey string, timeout time.Duration) Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &BulkClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}
