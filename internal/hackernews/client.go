package hackernews

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"storygrip/internal/domain"
)

// BaseURL is the public Hacker News search API
const BaseURL = "https://hn.algolia.com/api/v1"

// Client interface for Hacker News search operations.
type Client interface {
	Search(ctx context.Context, query string, page, hitsPerPage int) (*domain.SearchResult, error)
}

type httpClient struct {
	client  *http.Client
	baseURL string
}

// NewClient creates a new search client with the given HTTP client.
func NewClient(client *http.Client) Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpClient{
		client:  client,
		baseURL: BaseURL,
	}
}

// NewClientWithBaseURL creates a new search client with a custom base URL (for testing).
func NewClientWithBaseURL(client *http.Client, baseURL string) Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpClient{
		client:  client,
		baseURL: baseURL,
	}
}

// hit is one record of the API's hits array
type hit struct {
	ObjectID    string    `json:"objectID"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Author      string    `json:"author"`
	Points      int       `json:"points"`
	NumComments int       `json:"num_comments"`
	CreatedAt   time.Time `json:"created_at"`
}

// searchResponse is the API's search envelope
type searchResponse struct {
	Hits             []hit `json:"hits"`
	Page             int   `json:"page"`
	NbPages          int   `json:"nbPages"`
	NbHits           int   `json:"nbHits"`
	ProcessingTimeMS int   `json:"processingTimeMS"`
}

// Search runs one relevance-ordered query against the search endpoint.
func (c *httpClient) Search(ctx context.Context, query string, page, hitsPerPage int) (*domain.SearchResult, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	if hitsPerPage > 0 {
		params.Set("hitsPerPage", strconv.Itoa(hitsPerPage))
	}
	searchURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating search request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	stories := make([]domain.Story, 0, len(sr.Hits))
	for _, h := range sr.Hits {
		// Comment hits carry no title; self posts legitimately have no URL
		if h.ObjectID == "" || h.Title == "" {
			continue
		}
		stories = append(stories, domain.Story{
			ID:           h.ObjectID,
			Title:        h.Title,
			URL:          h.URL,
			Author:       h.Author,
			Points:       h.Points,
			CommentCount: h.NumComments,
			CreatedAt:    h.CreatedAt,
		})
	}

	return &domain.SearchResult{
		Query:      query,
		Stories:    stories,
		Page:       sr.Page,
		TotalPages: sr.NbPages,
		TotalHits:  sr.NbHits,
		ElapsedMS:  sr.ProcessingTimeMS,
	}, nil
}
