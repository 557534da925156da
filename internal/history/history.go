package history

import (
	"strings"
	"sync"

	"storygrip/internal/eventbus"
)

// maxEntries caps the recent-search list
const maxEntries = 5

// HistoryManager tracks the most recent committed search terms.
// The list lives for the session only; the one persisted value stays
// the last committed term in the key/value store.
type HistoryManager interface {
	Record(term string)
	Terms() []string
}

// historyManager is the concrete implementation
type historyManager struct {
	bus   eventbus.EventBus
	mu    sync.RWMutex
	terms []string // most recent first
}

// NewHistoryManager creates a history manager subscribed to search starts
func NewHistoryManager(bus eventbus.EventBus) HistoryManager {
	hm := &historyManager{bus: bus}

	bus.Subscribe(eventbus.EventSearchStarted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchStartedEvent); ok {
			hm.Record(event.Query)
		}
	})

	return hm
}

// Record moves term to the front of the list, dropping an older entry
// that differs only in case. Unchanged lists publish nothing.
func (hm *historyManager) Record(term string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}

	hm.mu.Lock()
	if len(hm.terms) > 0 && hm.terms[0] == term {
		hm.mu.Unlock()
		return
	}

	next := make([]string, 0, maxEntries)
	next = append(next, term)
	for _, existing := range hm.terms {
		if strings.EqualFold(existing, term) {
			continue
		}
		next = append(next, existing)
		if len(next) == maxEntries {
			break
		}
	}
	hm.terms = next

	snapshot := make([]string, len(hm.terms))
	copy(snapshot, hm.terms)
	hm.mu.Unlock()

	if hm.bus != nil {
		hm.bus.Publish(eventbus.HistoryChangedEvent{Terms: snapshot})
	}
}

// Terms returns the recent terms, most recent first
func (hm *historyManager) Terms() []string {
	hm.mu.RLock()
	defer hm.mu.RUnlock()

	terms := make([]string, len(hm.terms))
	copy(terms, hm.terms)
	return terms
}
