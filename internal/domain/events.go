package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchRequested  EventType = "SearchRequested"
	EventSearchStarted    EventType = "SearchStarted"
	EventSearchCompleted  EventType = "SearchCompleted"
	EventSearchFailed     EventType = "SearchFailed"
	EventArticleRequested EventType = "ArticleRequested"
	EventArticleLoaded    EventType = "ArticleLoaded"
	EventArticleFailed    EventType = "ArticleFailed"
	EventHistoryChanged   EventType = "HistoryChanged"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchRequestedEvent is emitted when a new query URL has been committed
type SearchRequestedEvent struct {
	Query string
	Page  int
	Token uint64 // commit sequence number, echoed back by the search service
}

func (e SearchRequestedEvent) Type() EventType { return EventSearchRequested }

// SearchStartedEvent is emitted when the search service begins a fetch
type SearchStartedEvent struct {
	Query string
	Page  int
	Token uint64
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchCompletedEvent is emitted when a fetch finishes successfully
type SearchCompletedEvent struct {
	Token  uint64
	Result *SearchResult
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted when a fetch fails for any reason
type SearchFailedEvent struct {
	Token uint64
	Query string
	Err   error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// ArticleRequestedEvent is emitted to ask the reader service for a story's text
type ArticleRequestedEvent struct {
	StoryID string
	Title   string
	URL     string
}

func (e ArticleRequestedEvent) Type() EventType { return EventArticleRequested }

// ArticleLoadedEvent is emitted when readable article text has been extracted
type ArticleLoadedEvent struct {
	Article Article
}

func (e ArticleLoadedEvent) Type() EventType { return EventArticleLoaded }

// ArticleFailedEvent is emitted when a story's link could not be read
type ArticleFailedEvent struct {
	StoryID string
	Title   string
	Err     error
}

func (e ArticleFailedEvent) Type() EventType { return EventArticleFailed }

// HistoryChangedEvent is emitted when the recent-search list changes
type HistoryChangedEvent struct {
	Terms []string // most recent first
}

func (e HistoryChangedEvent) Type() EventType { return EventHistoryChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
