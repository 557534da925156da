package reader

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	readability "github.com/go-shiori/go-readability"

	"storygrip/internal/domain"
	"storygrip/internal/eventbus"
)

// fetchTimeout bounds one article fetch
const fetchTimeout = 30 * time.Second

// ReaderService fetches story links and extracts readable text for the pager
type ReaderService interface {
	Read(ctx context.Context, storyID, title, pageURL string)
}

// readerService is the concrete implementation
type readerService struct {
	bus    eventbus.EventBus
	client *http.Client
}

// NewReaderService creates a reader service subscribed to article requests
func NewReaderService(bus eventbus.EventBus, client *http.Client) ReaderService {
	if client == nil {
		client = http.DefaultClient
	}
	rs := &readerService{
		bus:    bus,
		client: client,
	}

	bus.Subscribe(eventbus.EventArticleRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ArticleRequestedEvent); ok {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
				defer cancel()
				rs.Read(ctx, event.StoryID, event.Title, event.URL)
			}()
		}
	})

	return rs
}

// Read fetches pageURL, extracts its readable text and publishes the outcome
func (rs *readerService) Read(ctx context.Context, storyID, title, pageURL string) {
	article, err := rs.extract(ctx, pageURL)
	if err != nil {
		log.Printf("Article %s (%s) failed: %v", storyID, pageURL, err)
		rs.bus.Publish(eventbus.ArticleFailedEvent{StoryID: storyID, Title: title, Err: err})
		return
	}

	article.StoryID = storyID
	if article.Title == "" {
		article.Title = title
	}
	rs.bus.Publish(eventbus.ArticleLoadedEvent{Article: *article})
}

func (rs *readerService) extract(ctx context.Context, pageURL string) (*domain.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating article request for %s: %w", pageURL, err)
	}

	resp, err := rs.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("article %s returned status %d", pageURL, resp.StatusCode)
	}

	// The parsed URL lets readability resolve relative links
	parsed, _ := url.Parse(pageURL)
	extracted, err := readability.FromReader(resp.Body, parsed)
	if err != nil {
		return nil, fmt.Errorf("extracting content from %s: %w", pageURL, err)
	}

	return &domain.Article{
		Title:    extracted.Title,
		Byline:   extracted.Byline,
		SiteName: extracted.SiteName,
		Text:     extracted.TextContent,
	}, nil
}
