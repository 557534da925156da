package hackernews

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchFixture = `{
	"hits": [
		{
			"objectID": "38911111",
			"title": "Go 1.22 released",
			"url": "https://go.dev/blog/go1.22",
			"author": "pjmlp",
			"points": 742,
			"num_comments": 315,
			"created_at": "2024-02-06T17:00:00Z"
		},
		{
			"objectID": "38922222",
			"title": "Ask HN: How do you test TUIs?",
			"url": "",
			"author": "tptacek",
			"points": 96,
			"num_comments": 58,
			"created_at": "2024-02-07T09:30:00Z"
		},
		{
			"objectID": "38933333",
			"title": "",
			"url": "",
			"author": "someone",
			"points": 0,
			"num_comments": 0,
			"created_at": "2024-02-07T10:00:00Z"
		}
	],
	"page": 2,
	"nbPages": 14,
	"nbHits": 271,
	"processingTimeMS": 3
}`

func TestSearchBuildsRequestURL(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		page        int
		hitsPerPage int
		wantQuery   string
		wantPage    string
		wantHits    string
	}{
		{
			name:        "simple term",
			query:       "golang",
			page:        0,
			hitsPerPage: 20,
			wantQuery:   "golang",
			wantPage:    "0",
			wantHits:    "20",
		},
		{
			name:        "term with spaces",
			query:       "go routines",
			page:        3,
			hitsPerPage: 50,
			wantQuery:   "go routines",
			wantPage:    "3",
			wantHits:    "50",
		},
		{
			name:      "zero hits per page omits the parameter",
			query:     "zig",
			page:      0,
			wantQuery: "zig",
			wantPage:  "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			var gotQuery, gotPage, gotHits string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotQuery = r.URL.Query().Get("query")
				gotPage = r.URL.Query().Get("page")
				gotHits = r.URL.Query().Get("hitsPerPage")
				w.Write([]byte(`{"hits":[],"page":0,"nbPages":0,"nbHits":0}`))
			}))
			defer server.Close()

			client := NewClientWithBaseURL(server.Client(), server.URL)
			_, err := client.Search(context.Background(), tt.query, tt.page, tt.hitsPerPage)
			require.NoError(t, err)

			assert.Equal(t, "/search", gotPath)
			assert.Equal(t, tt.wantQuery, gotQuery)
			assert.Equal(t, tt.wantPage, gotPage)
			assert.Equal(t, tt.wantHits, gotHits)
		})
	}
}

func TestSearchDecodesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchFixture))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.Client(), server.URL)
	result, err := client.Search(context.Background(), "golang", 2, 20)
	require.NoError(t, err)

	assert.Equal(t, "golang", result.Query)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 14, result.TotalPages)
	assert.Equal(t, 271, result.TotalHits)
	assert.Equal(t, 3, result.ElapsedMS)

	// The untitled hit is dropped, order of the rest is preserved
	require.Len(t, result.Stories, 2)
	first := result.Stories[0]
	assert.Equal(t, "38911111", first.ID)
	assert.Equal(t, "Go 1.22 released", first.Title)
	assert.Equal(t, "https://go.dev/blog/go1.22", first.URL)
	assert.Equal(t, "pjmlp", first.Author)
	assert.Equal(t, 742, first.Points)
	assert.Equal(t, 315, first.CommentCount)
	assert.Equal(t, time.Date(2024, 2, 6, 17, 0, 0, 0, time.UTC), first.CreatedAt)

	// Self posts keep their empty URL
	second := result.Stories[1]
	assert.Equal(t, "38922222", second.ID)
	assert.Equal(t, "", second.URL)
}

func TestSearchErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "rate limited",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"hits": [`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClientWithBaseURL(server.Client(), server.URL)
			_, err := client.Search(context.Background(), "golang", 0, 20)
			assert.Error(t, err)
		})
	}
}

func TestSearchHonorsContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := NewClientWithBaseURL(server.Client(), server.URL)
	_, err := client.Search(ctx, "golang", 0, 20)
	assert.Error(t, err)
}
