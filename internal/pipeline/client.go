package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Asset is an asset as listed by the pipeline API.
type Asset struct {
	ID        uint   `json:"id"`
	Symbol    string `json:"symbol"`
	Name      string `json:"name"`
	AssetType string `json:"asset_type"`
}

// PendingNews is a news item awaiting analysis.
type PendingNews struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Summary     string    `json:"summary"`
	Source      string    `json:"source"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
}

// IngestRequest is a news item submitted by the ingester.
type IngestRequest struct {
	Title       string         `json:"title"`
	Content     string         `json:"content"`
	Summary     string         `json:"summary,omitempty"`
	Source      string         `json:"source"`
	URL         string         `json:"url"`
	PublishedAt *time.Time     `json:"published_at,omitempty"`
	Mentions    map[string]int `json:"mentions,omitempty"`
}

// IngestResponse reports whether the API stored a new item.
type IngestResponse struct {
	Created bool `json:"created"`
	News    struct {
		ID uint `json:"id"`
	} `json:"news"`
}

// AnalysisRequest is the analysis result submitted for one news item.
type AnalysisRequest struct {
	SentimentScore float64  `json:"sentiment_score"`
	Confidence     float64  `json:"confidence"`
	Entities       []string `json:"entities"`
	Keywords       []string `json:"keywords"`
	Summary        string   `json:"summary,omitempty"`
	ModelVersion   string   `json:"model_version"`
}

// APIClient communicates with the finnews pipeline API.
type APIClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewAPIClient creates a new pipeline API client.
func NewAPIClient(baseURL, apiKey string, httpClient *http.Client) *APIClient {
	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// ListAssets fetches every asset known to the API.
func (c *APIClient) ListAssets(ctx context.Context) ([]Asset, error) {
	var assets []Asset
	if err := c.do(ctx, http.MethodGet, "/api/v1/pipeline/assets", nil, http.StatusOK, &assets); err != nil {
		return nil, fmt.Errorf("fetching assets: %w", err)
	}
	return assets, nil
}

// ListPending fetches up to limit news items flagged for re-analysis.
func (c *APIClient) ListPending(ctx context.Context, limit int) ([]PendingNews, error) {
	path := "/api/v1/pipeline/news/pending"
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}
	var pending []PendingNews
	if err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &pending); err != nil {
		return nil, fmt.Errorf("fetching pending news: %w", err)
	}
	return pending, nil
}

// IngestNews submits a news item. Duplicates by URL come back with Created false.
func (c *APIClient) IngestNews(ctx context.Context, item IngestRequest) (*IngestResponse, error) {
	var result IngestResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/pipeline/news", item, 0, &result)
	if err != nil {
		return nil, fmt.Errorf("ingesting news: %w", err)
	}
	return &result, nil
}

// UpsertAnalysis stores the analysis of a news item.
func (c *APIClient) UpsertAnalysis(ctx context.Context, newsID uint, analysis AnalysisRequest) error {
	path := fmt.Sprintf("/api/v1/pipeline/news/%d/analysis", newsID)
	if err := c.do(ctx, http.MethodPut, path, analysis, http.StatusOK, nil); err != nil {
		return fmt.Errorf("storing analysis for news %d: %w", newsID, err)
	}
	return nil
}

// do sends a request and decodes the response into out when out is non-nil.
// A zero wantStatus accepts both 200 and 201.
func (c *APIClient) do(ctx context.Context, method, path string, body interface{}, wantStatus int, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	ok := resp.StatusCode == wantStatus
	if wantStatus == 0 {
		ok = resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated
	}
	if !ok {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
