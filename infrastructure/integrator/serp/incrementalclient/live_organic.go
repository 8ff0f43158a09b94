package incrementalclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	serpdomain "github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serp/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de status retornados no corpo da resposta
const (
	StatusOK               = 20000
	StatusAuthFailed       = 40100
	StatusIPNotWhitelisted = 40104
	StatusRateLimited      = 40202
	StatusTooManyTasks     = 40209
)

type Task struct {
	Keyword      string `json:"keyword"`
	LocationCode int    `json:"location_code"`
	LanguageCode string `json:"language_code"`
	Depth        int    `json:"depth"`
}

type LiveResponse struct {
	StatusCode    int          `json:"status_code"`
	StatusMessage string       `json:"status_message"`
	Cost          float64      `json:"cost"`
	Tasks         []TaskResult `json:"tasks"`
}

type TaskResult struct {
	StatusCode    int          `json:"status_code"`
	StatusMessage string       `json:"status_message"`
	Cost          float64      `json:"cost"`
	Result        []ResultPage `json:"result"`
}

type ResultPage struct {
	Items []Item `json:"items"`
}

type Item struct {
	Type         string `json:"type"`
	RankGroup    int    `json:"rank_group"`
	RankAbsolute int    `json:"rank_absolute"`
	Domain       string `json:"domain"`
	URL          string `json:"url"`
	Title        string `json:"title"`
}

// OrganicResults retorna os itens orgânicos numerados pela posição entre orgânicos
func (r *LiveResponse) OrganicResults() []serpdomain.OrganicResult {
	var organic []serpdomain.OrganicResult
	for _, task := range r.Tasks {
		for _, page := range task.Result {
			for _, item := range page.Items {
				if item.Type != "organic" {
					continue
				}
				organic = append(organic, serpdomain.OrganicResult{
					Position: len(organic) + 1,
					URL:      item.URL,
					Domain:   item.Domain,
					Title:    item.Title,
				})
			}
		}
	}
	return organic
}

// TotalCost retorna o custo informado pelo provedor
func (r *LiveResponse) TotalCost() float64 {
	if r.Cost > 0 {
		return r.Cost
	}

	var total float64
	for _, task := range r.Tasks {
		total += task.Cost
	}
	return total
}

func (c *IncrementalClient) LiveOrganic(ctx context.Context, task Task) (*LiveResponse, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, "/v3/serp/google/organic/live/regular")

	payload, err := json.Marshal([]Task{task})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar a tarefa")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.SetBasicAuth(c.login, c.password)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serpdomain.ClassifyTransportError(ProviderName, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, serpdomain.ClassifyTransportError(ProviderName, err)
	}

	var response LiveResponse
	decodeErr := json.Unmarshal(body, &response)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, serpdomain.NewProviderError(ProviderName, kindForStatus(response.StatusCode, serpdomain.ErrorKindAuth), resp.StatusCode, messageOr(response.StatusMessage, resp.Status))
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, serpdomain.NewProviderError(ProviderName, serpdomain.ErrorKindRateLimited, resp.StatusCode, messageOr(response.StatusMessage, resp.Status))
	case resp.StatusCode != http.StatusOK:
		return nil, serpdomain.NewProviderError(ProviderName, kindForStatus(response.StatusCode, serpdomain.ErrorKindTask), resp.StatusCode, messageOr(response.StatusMessage, resp.Status))
	}

	if decodeErr != nil {
		return nil, &serpdomain.ProviderError{
			Provider: ProviderName,
			Kind:     serpdomain.ErrorKindMalformedResponse,
			Message:  "erro ao decodificar a resposta",
			Err:      decodeErr,
		}
	}

	if response.StatusCode != StatusOK {
		return nil, serpdomain.NewProviderError(ProviderName, kindForStatus(response.StatusCode, serpdomain.ErrorKindTask), response.StatusCode, response.StatusMessage)
	}

	if len(response.Tasks) == 0 {
		return nil, serpdomain.NewProviderError(ProviderName, serpdomain.ErrorKindMalformedResponse, 0, "resposta sem tarefas")
	}

	for _, t := range response.Tasks {
		if t.StatusCode != StatusOK {
			return nil, serpdomain.NewProviderError(ProviderName, kindForStatus(t.StatusCode, serpdomain.ErrorKindTask), t.StatusCode, t.StatusMessage)
		}
	}

	return &response, nil
}

func kindForStatus(code int, fallback serpdomain.ErrorKind) serpdomain.ErrorKind {
	switch code {
	case StatusAuthFailed:
		return serpdomain.ErrorKindAuth
	case StatusIPNotWhitelisted:
		return serpdomain.ErrorKindIPNotWhitelisted
	case StatusRateLimited, StatusTooManyTasks:
		return serpdomain.ErrorKindRateLimited
	default:
		return fallback
	}
}

func messageOr(message, fallback string) string {
	if strings.TrimSpace(message) == "" {
		return fallback
	}
	return message
}
