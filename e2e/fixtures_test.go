//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
)

// fixtureTotalHits is the pretend corpus size for every normal query
const fixtureTotalHits = 45

// Queries with special fixture behavior
const (
	queryServerError = "failplease"
	queryNoResults   = "emptyplease"
)

// apiHit mirrors the wire format of one search hit
type apiHit struct {
	ObjectID    string    `json:"objectID"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Author      string    `json:"author"`
	Points      int       `json:"points"`
	NumComments int       `json:"num_comments"`
	CreatedAt   time.Time `json:"created_at"`
}

// apiResponse mirrors the wire format of the search envelope
type apiResponse struct {
	Hits             []apiHit `json:"hits"`
	Page             int      `json:"page"`
	NbPages          int      `json:"nbPages"`
	NbHits           int      `json:"nbHits"`
	ProcessingTimeMS int      `json:"processingTimeMS"`
}

// FixtureAPI serves canned search results and readable articles so tests
// never touch the real endpoint
type FixtureAPI struct {
	server *httptest.Server
	base   time.Time

	mu       sync.Mutex
	requests []url.Values
}

// StartFixtureAPI starts the fixture server and registers its shutdown
func StartFixtureAPI(t *testing.T) *FixtureAPI {
	t.Helper()
	api := &FixtureAPI{base: time.Now().UTC()}

	mux := http.NewServeMux()
	mux.HandleFunc("/search", api.handleSearch)
	mux.HandleFunc("/article/", api.handleArticle)

	api.server = httptest.NewServer(mux)
	t.Cleanup(api.server.Close)
	return api
}

// URL returns the base URL tests write into the app config as the endpoint
func (api *FixtureAPI) URL() string {
	return api.server.URL
}

// Requests returns a snapshot of the recorded search query parameters
func (api *FixtureAPI) Requests() []url.Values {
	api.mu.Lock()
	defer api.mu.Unlock()
	out := make([]url.Values, len(api.requests))
	copy(out, api.requests)
	return out
}

func (api *FixtureAPI) handleSearch(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	api.mu.Lock()
	api.requests = append(api.requests, params)
	api.mu.Unlock()

	query := params.Get("query")
	page, _ := strconv.Atoi(params.Get("page"))
	hitsPerPage, err := strconv.Atoi(params.Get("hitsPerPage"))
	if err != nil || hitsPerPage <= 0 {
		hitsPerPage = 20
	}

	switch query {
	case queryServerError:
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
		return
	case queryNoResults:
		writeJSON(w, apiResponse{Hits: []apiHit{}, ProcessingTimeMS: 3})
		return
	}

	nbPages := (fixtureTotalHits + hitsPerPage - 1) / hitsPerPage
	if page < 0 {
		page = 0
	}
	if page >= nbPages {
		page = nbPages - 1
	}

	first := page*hitsPerPage + 1
	last := first + hitsPerPage - 1
	if last > fixtureTotalHits {
		last = fixtureTotalHits
	}

	hits := make([]apiHit, 0, hitsPerPage)
	for n := first; n <= last; n++ {
		hits = append(hits, api.hit(query, n))
	}

	writeJSON(w, apiResponse{
		Hits:             hits,
		Page:             page,
		NbPages:          nbPages,
		NbHits:           fixtureTotalHits,
		ProcessingTimeMS: 7,
	})
}

// hit builds the nth story for a query. Every fifth story is a self post
// without a URL; the rest link back to the fixture's own article pages.
// Points and comments grow with n so sort order is predictable.
func (api *FixtureAPI) hit(query string, n int) apiHit {
	id := fmt.Sprintf("%s-%d", query, n)
	storyURL := ""
	if n%5 != 0 {
		storyURL = fmt.Sprintf("%s/article/%s", api.server.URL, id)
	}
	return apiHit{
		ObjectID:    id,
		Title:       fmt.Sprintf("%s story %d", query, n),
		URL:         storyURL,
		Author:      fmt.Sprintf("hn_user_%d", n),
		Points:      n * 10,
		NumComments: n * 3,
		CreatedAt:   api.base.Add(-time.Duration(n) * time.Hour),
	}
}

// articleHTML needs enough prose that content extraction keeps the body
const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Fixture article %s</title></head>
<body>
<article>
<h1>Fixture article %s</h1>
<p>The migration finished two hours before the traffic spike arrived, and
nobody noticed until the weekly report came out. That was the point of the
whole exercise: boring deploys, boring graphs, boring on-call weeks.</p>
<p>This page exists so end to end tests can exercise the reader pipeline
without leaving the test machine. The extractor wants a few real paragraphs
to work with, so here is a second one describing nothing in particular at
considerable length.</p>
<p>A third paragraph keeps the content scorer comfortable. Extraction tends
to discard pages that look like navigation shells, and three paragraphs of
plain prose are enough to pass for an article instead.</p>
</article>
</body>
</html>
`

func (api *FixtureAPI) handleArticle(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/article/")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, articleHTML, id, id)
}

func writeJSON(w http.ResponseWriter, resp apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// WriteAppConfig writes a config file pointing the app at the fixture
// server, with the story store kept inside the workspace. Returns the
// config file path.
func WriteAppConfig(t *testing.T, workspace, endpoint string, pageSize int, defaultQuery string) string {
	t.Helper()

	dir := filepath.Join(workspace, ".config", "storygrip")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating config dir: %v", err)
	}

	content := fmt.Sprintf(`version = 1
endpoint = %q
default_query = %q
page_size = %d
store_path = %q

[ui]
auto_focus_search = false
show_points = true
show_comments = true
autosave_on_exit = true
`, endpoint, defaultQuery, pageSize, filepath.Join(workspace, "storygrip.db"))

	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}
