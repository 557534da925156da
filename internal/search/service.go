package search

import (
	"context"
	"log"
	"time"

	"storygrip/internal/eventbus"
	"storygrip/internal/hackernews"
)

// requestTimeout bounds one search fetch; the API has no other deadline
const requestTimeout = 30 * time.Second

// SearchService turns committed queries into search lifecycle events
type SearchService interface {
	Search(ctx context.Context, query string, page int, token uint64)
}

// searchService is the concrete implementation
type searchService struct {
	bus      eventbus.EventBus
	client   hackernews.Client
	pageSize int
}

// NewSearchService creates a search service subscribed to search requests
func NewSearchService(bus eventbus.EventBus, client hackernews.Client, pageSize int) SearchService {
	ss := &searchService{
		bus:      bus,
		client:   client,
		pageSize: pageSize,
	}

	// Subscribe to committed queries
	bus.Subscribe(eventbus.EventSearchRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchRequestedEvent); ok {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
				defer cancel()
				ss.Search(ctx, event.Query, event.Page, event.Token)
			}()
		}
	})

	return ss
}

// Search issues exactly one fetch and publishes its outcome.
// Every failure collapses into a single failed event; the caller's
// token travels through so stale responses can be recognized.
func (ss *searchService) Search(ctx context.Context, query string, page int, token uint64) {
	ss.bus.Publish(eventbus.SearchStartedEvent{Query: query, Page: page, Token: token})

	result, err := ss.client.Search(ctx, query, page, ss.pageSize)
	if err != nil {
		log.Printf("Search %q (page %d) failed: %v", query, page, err)
		ss.bus.Publish(eventbus.SearchFailedEvent{Token: token, Query: query, Err: err})
		return
	}

	ss.bus.Publish(eventbus.SearchCompletedEvent{Token: token, Result: result})
}
