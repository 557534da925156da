package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"storygrip/internal/config"
	"storygrip/internal/eventbus"
	"storygrip/internal/hackernews"
	"storygrip/internal/history"
	"storygrip/internal/reader"
	"storygrip/internal/search"
	"storygrip/internal/store"
	"storygrip/internal/ui"
)

func main() {
	// Parse command line arguments
	var query string
	flag.StringVar(&query, "query", "", "Search term to run on startup")
	flag.StringVar(&query, "q", "", "Search term to run on startup (shorthand)")
	flag.Parse()

	// If no query specified, check for remaining args
	if query == "" && flag.NArg() > 0 {
		query = flag.Arg(0)
	}

	// Set up logging
	logFile, err := os.OpenFile("storygrip.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Load configuration
	configSvc := config.NewConfigService()
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		// Use default config
		cfg = config.DefaultConfig()
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Stop()

	// Open the persistent store, falling back to memory when unavailable
	storePath := cfg.StorePath
	if storePath == "" {
		storePath = filepath.Join(config.Dir(), "storygrip.db")
	}
	var kv store.Store
	if s, err := store.Open(storePath); err != nil {
		log.Printf("Could not open store at %s: %v (keeping history in memory)", storePath, err)
		kv = store.NewMemoryStore()
	} else {
		kv = s
	}
	defer kv.Close()

	// Initialize services
	httpClient := &http.Client{Timeout: 30 * time.Second}
	_ = search.NewSearchService(bus, hackernews.NewClientWithBaseURL(httpClient, cfg.Endpoint), cfg.PageSize) // subscribes to events automatically
	_ = reader.NewReaderService(bus, httpClient)                                                              // subscribes to events automatically
	_ = history.NewHistoryManager(bus)                                                                        // subscribes to events automatically

	// Decide the startup query: the flag beats the stored term beats the default
	initial := query
	if initial == "" {
		if last, err := kv.Get(store.KeyLastSearch); err == nil {
			initial = last
		}
	}
	if initial == "" {
		initial = cfg.DefaultQuery
	}

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, configSvc, kv, initial)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Quit()
	}()

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			// Channel full, drop event
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventSearchStarted, forward)
	bus.Subscribe(eventbus.EventSearchCompleted, forward)
	bus.Subscribe(eventbus.EventSearchFailed, forward)
	bus.Subscribe(eventbus.EventArticleLoaded, forward)
	bus.Subscribe(eventbus.EventArticleFailed, forward)
	bus.Subscribe(eventbus.EventHistoryChanged, forward)
	bus.Subscribe(eventbus.EventError, forward)

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Readiness marker for the e2e harness, printed before the
	// alternate screen swallows stdout
	if os.Getenv("STORYGRIP_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Cleanup
	close(eventChan)
}
