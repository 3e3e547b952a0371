package openaiapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

const sseKeepAliveInterval = 15 * time.Second

// sseWriter writes server-sent events with a periodic keep-alive comment,
// matching axum's Sse::keep_alive(KeepAlive::default()) (spec.md §4.6).
// Safe for one writer goroutine plus the internal keep-alive ticker; not
// safe for concurrent WriteJSON calls from multiple goroutines.
type sseWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
	mu      sync.Mutex
	stop    chan struct{}
	done    chan struct{}
}

func newSSEWriter(w http.ResponseWriter) *sseWriter {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, _ := w.(http.Flusher)
	s := &sseWriter{
		w:       w,
		flusher: flusher,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go s.keepAliveLoop()
	return s
}

func (s *sseWriter) keepAliveLoop() {
	defer close(s.done)
	ticker := time.NewTicker(sseKeepAliveInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			fmt.Fprint(s.w, ": keep-alive\n\n")
			if s.flusher != nil {
				s.flusher.Flush()
			}
			s.mu.Unlock()
		}
	}
}

// WriteJSON emits one event whose data is v's JSON encoding.
func (s *sseWriter) WriteJSON(v interface{}) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", body); err != nil {
		return err
	}
	if s.flusher != nil {
		s.flusher.Flush()
	}
	return nil
}

// WriteDone emits the terminal `[DONE]` sentinel event (spec.md §4.6,
// §4.7.5 point 4).
func (s *sseWriter) WriteDone() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprint(s.w, "data: [DONE]\n\n"); err != nil {
		return err
	}
	if s.flusher != nil {
		s.flusher.Flush()
	}
	return nil
}

// Close stops the keep-alive goroutine and waits for it to exit.
func (s *sseWriter) Close() {
	close(s.stop)
	<-s.done
}
