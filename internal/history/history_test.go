package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storygrip/internal/eventbus"
)

func TestRecordKeepsMostRecentFirst(t *testing.T) {
	hm := NewHistoryManager(eventbus.New())

	hm.Record("golang")
	hm.Record("rust")
	hm.Record("zig")

	assert.Equal(t, []string{"zig", "rust", "golang"}, hm.Terms())
}

func TestRecordMovesRepeatToFront(t *testing.T) {
	hm := NewHistoryManager(eventbus.New())

	hm.Record("golang")
	hm.Record("rust")
	hm.Record("golang")

	assert.Equal(t, []string{"golang", "rust"}, hm.Terms())
}

func TestRecordDedupesCaseInsensitively(t *testing.T) {
	hm := NewHistoryManager(eventbus.New())

	hm.Record("golang")
	hm.Record("rust")
	hm.Record("GoLang")

	assert.Equal(t, []string{"GoLang", "rust"}, hm.Terms())
}

func TestRecordCapsTheList(t *testing.T) {
	hm := NewHistoryManager(eventbus.New())

	for _, term := range []string{"one", "two", "three", "four", "five", "six"} {
		hm.Record(term)
	}

	assert.Equal(t, []string{"six", "five", "four", "three", "two"}, hm.Terms())
}

func TestRecordIgnoresBlankTerms(t *testing.T) {
	hm := NewHistoryManager(eventbus.New())

	hm.Record("  ")
	hm.Record("")

	assert.Empty(t, hm.Terms())
}

func TestRecordPublishesHistoryChanged(t *testing.T) {
	bus := eventbus.New()
	changed := make(chan eventbus.DomainEvent, 4)
	bus.Subscribe(eventbus.EventHistoryChanged, func(e eventbus.DomainEvent) { changed <- e })

	hm := NewHistoryManager(bus)
	hm.Record("golang")

	select {
	case e := <-changed:
		event, ok := e.(eventbus.HistoryChangedEvent)
		require.True(t, ok)
		assert.Equal(t, []string{"golang"}, event.Terms)
	case <-time.After(2 * time.Second):
		t.Fatal("no history change event")
	}

	// Recording the identical front term again changes nothing
	hm.Record("golang")
	select {
	case <-changed:
		t.Fatal("unchanged history should not publish")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestManagerRecordsSearchStarts(t *testing.T) {
	bus := eventbus.New()
	hm := NewHistoryManager(bus)

	bus.Publish(eventbus.SearchStartedEvent{Query: "golang", Token: 1})

	require.Eventually(t, func() bool {
		terms := hm.Terms()
		return len(terms) == 1 && terms[0] == "golang"
	}, 2*time.Second, 10*time.Millisecond)
}
