// Package web provides a localhost HTTP server over an analyzed statement.
//
// The server reads a pre-extracted statement text file, runs the analysis
// pipeline on it and exposes the ledger, period and summary views as JSON
// for a dashboard frontend to render. With watch mode enabled it re-analyzes
// the file whenever it changes and notifies clients over SSE.
//
// SECURITY WARNING: there is no authentication; bind to localhost only.
package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"passbook/category"
	"passbook/ledger"
	"passbook/pipeline"
	"passbook/telemetry"
)

type Server struct {
	Port         int
	Host         string
	Version      string
	WatchEnabled bool

	// Rules overrides the categorization table; nil keeps the defaults.
	Rules []category.Rule

	mu        sync.RWMutex
	ledger    *ledger.Ledger
	inputFile string

	sseClients map[chan string]struct{}
	sseMu      sync.Mutex
}

// New creates a server for the given statement text file.
func New(port int, statementFile string) *Server {
	return &Server{
		Port:      port,
		Host:      "127.0.0.1",
		inputFile: statementFile,
	}
}

// Start analyzes the statement, optionally starts the file watcher, and
// serves the API until the listener fails.
func (s *Server) Start(ctx context.Context) error {
	span := telemetry.FromContext(ctx).Start(fmt.Sprintf("web.start %s:%d", s.Host, s.Port))
	defer span.End()

	if s.inputFile == "" {
		return fmt.Errorf("statement file is required")
	}

	s.sseClients = make(map[chan string]struct{})

	loadSpan := span.Child(fmt.Sprintf("web.analyze %s", filepath.Base(s.inputFile)))
	err := s.reanalyze(ctx)
	loadSpan.End()
	if err != nil {
		return fmt.Errorf("failed to analyze statement: %w", err)
	}

	if s.WatchEnabled {
		if err := s.startWatcher(ctx); err != nil {
			return fmt.Errorf("failed to start file watcher: %w", err)
		}
	}

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	return http.ListenAndServe(addr, s.router())
}

func (s *Server) router() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/transactions", s.handleGetTransactions)
	mux.HandleFunc("GET /api/period", s.handleGetPeriod)
	mux.HandleFunc("GET /api/summary/{view}", s.handleGetSummary)
	mux.HandleFunc("GET /api/events", s.handleSSE)
	return mux
}

// reanalyze reads the statement file and rebuilds the ledger. The previous
// ledger stays in place when the new run fails.
func (s *Server) reanalyze(ctx context.Context) error {
	data, err := os.ReadFile(s.inputFile)
	if err != nil {
		return err
	}

	var opts []pipeline.Option
	if s.Rules != nil {
		opts = append(opts, pipeline.WithRules(s.Rules))
	}

	l, err := pipeline.Run(ctx, pipeline.Pages(string(data)), opts...)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.ledger = l
	s.mu.Unlock()

	return nil
}

// startWatcher watches the statement file and re-analyzes on change.
func (s *Server) startWatcher(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Watch the directory, not the file: atomic saves replace the inode.
	if err := watcher.Add(filepath.Dir(s.inputFile)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", s.inputFile, err)
	}

	go s.runWatcher(ctx, watcher)
	return nil
}

// runWatcher processes file system events with debouncing; editors often
// write files in multiple steps.
func (s *Server) runWatcher(ctx context.Context, watcher *fsnotify.Watcher) {
	const debounceDelay = 100 * time.Millisecond

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
		_ = watcher.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Name != s.inputFile {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				if err := s.reanalyze(ctx); err != nil {
					log.Printf("Failed to re-analyze statement: %v", err)
					return
				}
				s.broadcast("reload")
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)
		}
	}
}

// handleSSE streams reload events to dashboard clients.
func (s *Server) handleSSE(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	clientChan := make(chan string, 10)

	s.sseMu.Lock()
	s.sseClients[clientChan] = struct{}{}
	s.sseMu.Unlock()

	defer func() {
		s.sseMu.Lock()
		delete(s.sseClients, clientChan)
		s.sseMu.Unlock()
		close(clientChan)
	}()

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	_, _ = fmt.Fprintf(w, "data: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case event := <-clientChan:
			_, _ = fmt.Fprintf(w, "data: %s\n\n", event)
			flusher.Flush()
		}
	}
}

// broadcast sends an event to all connected SSE clients.
func (s *Server) broadcast(event string) {
	s.sseMu.Lock()
	defer s.sseMu.Unlock()

	for clientChan := range s.sseClients {
		select {
		case clientChan <- event:
		default:
			// Client buffer full, skip
		}
	}
}
