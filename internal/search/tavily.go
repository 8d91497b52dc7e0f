package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/corpintel/corpintel/internal/intel"
	"github.com/corpintel/corpintel/internal/logging"
)

const tavilyEndpoint = "https://api.tavily.com/search"

// snippetMaxLen truncates result content so synthesis prompts stay small.
const snippetMaxLen = 500

// Tavily calls the Tavily search API.
type Tavily struct {
	apiKey string
	// depth controls Tavily's search_depth parameter (basic or advanced).
	depth string
	// maxResults bounds how many hits one query may return.
	maxResults int
	endpoint   string
	client     *http.Client
	logger     *logging.Logger
}

// TavilyConfig configures the Tavily client.
type TavilyConfig struct {
	APIKey     string
	Depth      string // defaults to "basic"
	MaxResults int    // defaults to 3
}

// NewTavily constructs a Tavily search client.
func NewTavily(cfg TavilyConfig) *Tavily {
	if cfg.Depth == "" {
		cfg.Depth = "basic"
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 3
	}
	return &Tavily{
		apiKey:     cfg.APIKey,
		depth:      cfg.Depth,
		maxResults: cfg.MaxResults,
		endpoint:   tavilyEndpoint,
		client:     &http.Client{Timeout: 10 * time.Second},
		logger:     logging.GetLogger("search.tavily"),
	}
}

// Search posts a query to Tavily and maps the response to search results.
func (t *Tavily) Search(ctx context.Context, query string) ([]intel.SearchResult, error) {
	if strings.TrimSpace(t.apiKey) == "" {
		return nil, errors.New("tavily: API key is missing")
	}

	body := map[string]any{
		"query":        query,
		"api_key":      t.apiKey,
		"search_depth": t.depth,
		"max_results":  t.maxResults,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	var resp *http.Response
	delay := 1 * time.Second
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err = t.client.Do(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			break
		}
		resp.Body.Close()

		// Back off and retry on 429, doubling the delay each time up to 30s.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		if delay < 30*time.Second {
			delay *= 2
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily http %d", resp.StatusCode)
	}

	var response struct {
		Results []struct {
			Title   string `json:"title"`
			URL     string `json:"url"`
			Content string `json:"content"`
		} `json:"results"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	results := make([]intel.SearchResult, 0, len(response.Results))
	for _, r := range response.Results {
		results = append(results, intel.SearchResult{
			Title:   r.Title,
			URL:     r.URL,
			Snippet: truncate(r.Content, snippetMaxLen),
		})
		if len(results) >= t.maxResults {
			break
		}
	}

	t.logger.DebugWithFields("search complete",
		logging.Field("query", query),
		logging.Field("results", len(results)),
		logging.Field("duration_ms", time.Since(start).Milliseconds()),
	)

	return results, nil
}

// truncate cuts s to at most n bytes without splitting a UTF-8 rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
