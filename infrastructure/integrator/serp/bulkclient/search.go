package bulkclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	serpdomain "github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serp/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const resultsPerPage = 10

type SearchParams struct {
	Query    string
	Location string
	Pages    int
}

type SearchResponse struct {
	RequestInfo RequestInfo `json:"request_info"`
	Pages       []Page      `json:"pages"`
}

type RequestInfo struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type Page struct {
	Page    int      `json:"page"`
	Results []Result `json:"results"`
}

type Result struct {
	Type     string `json:"type"`
	Position int    `json:"position"`
	Title    string `json:"title"`
	Link     string `json:"link"`
	Domain   string `json:"domain"`
}

// PagesForDepth retorna quantas páginas de 10 resultados cobrem a profundidade
func PagesForDepth(depth int) int {
	if depth <= 0 {
		return 1
	}
	return (depth + resultsPerPage - 1) / resultsPerPage
}

// OrganicResults concatena as páginas mantendo apenas resultados orgânicos,
// numerados pela posição entre orgânicos
func (r *SearchResponse) OrganicResults() []serpdomain.OrganicResult {
	var organic []serpdomain.OrganicResult
	for _, page := range r.Pages {
		for _, result := range page.Results {
			if result.Type != "" && result.Type != "organic" {
				continue
			}
			organic = append(organic, serpdomain.OrganicResult{
				Position: len(organic) + 1,
				URL:      result.Link,
				Domain:   result.Domain,
				Title:    result.Title,
			})
		}
	}
	return organic
}

func (c *BulkClient) Search(ctx context.Context, params SearchParams) (*SearchResponse, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, "/search")

	query := endpoint.Query()
	query.Set("api_key", c.apiKey)
	query.Set("q", params.Query)
	if params.Location != "" {
		query.Set("location", params.Location)
	}
	query.Set("num", strconv.Itoa(resultsPerPage))
	query.Set("max_page", strconv.Itoa(params.Pages))
	query.Set("output", "json")
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
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

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, statusError(resp.StatusCode, serpdomain.ErrorKindAuth, body)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, statusError(resp.StatusCode, serpdomain.ErrorKindRateLimited, body)
	case resp.StatusCode != http.StatusOK:
		return nil, statusError(resp.StatusCode, serpdomain.ErrorKindTask, body)
	}

	var response SearchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, &serpdomain.ProviderError{
			Provider: ProviderName,
			Kind:     serpdomain.ErrorKindMalformedResponse,
			Message:  "erro ao decodificar a resposta",
			Err:      err,
		}
	}

	if !response.RequestInfo.Success {
		kind := serpdomain.ErrorKindTask
		if strings.Contains(strings.ToLower(response.RequestInfo.Message), "whitelist") {
			kind = serpdomain.ErrorKindIPNotWhitelisted
		}
		return nil, serpdomain.NewProviderError(ProviderName, kind, resp.StatusCode, response.RequestInfo.Message)
	}

	return &response, nil
}

func statusError(statusCode int, kind serpdomain.ErrorKind, body []byte) *serpdomain.ProviderError {
	message := http.StatusText(statusCode)

	var payload struct {
		RequestInfo RequestInfo `json:"request_info"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.RequestInfo.Message != "" {
		message = payload.RequestInfo.Message
		if strings.Contains(strings.ToLower(message), "whitelist") {
			kind = serpdomain.ErrorKindIPNotWhitelisted
		}
	}

	return serpdomain.NewProviderError(ProviderName, kind, statusCode, message)
}
