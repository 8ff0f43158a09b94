package incrementalclient

import (
	"context"
	"net/http"
	"time"
)

const ProviderName = "incremental-provider"

type Client interface {
	LiveOrganic(ctx context.Context, task Task) (*LiveResponse, error)
}

type IncrementalClient struct {
	httpClient *http.Client
	baseURL    string
	login      string
	password   string
}

func NewClient(baseURL, login, password string, timeout time.Duration) Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &IncrementalClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:  baseURL,
		login:    login,
		password: password,
	}
}
