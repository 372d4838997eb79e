package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/talk-coach/internal/pipeline"
	"github.com/jonathan/talk-coach/internal/types"
)

// SSE event names on /api/analyze/stream
const (
	sseEventStep     = "step"
	sseEventComplete = "complete"
	sseEventError    = "error"
)

// SSEWriter writes Server-Sent Events with sequential ids starting at 0.
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
	nextID  int
}

// NewSSEWriter prepares w for streaming. It fails if w cannot flush.
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	return &SSEWriter{w: w, flusher: flusher}, nil
}

// WriteEvent sends one event with data encoded as a single JSON line.
func (s *SSEWriter) WriteEvent(event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", event, err)
	}

	if _, err := fmt.Fprintf(s.w, "id: %d\nevent: %s\ndata: %s\n\n", s.nextID, event, payload); err != nil {
		return err
	}
	s.nextID++
	s.flusher.Flush()
	return nil
}

// WriteProgress sends a pipeline step. Intermediate artifacts are left out;
// the complete event carries the full report.
func (s *SSEWriter) WriteProgress(event pipeline.ProgressEvent) error {
	event.Content = nil
	return s.WriteEvent(sseEventStep, event)
}

// WriteError sends an error event
func (s *SSEWriter) WriteError(message string) error {
	return s.WriteEvent(sseEventError, map[string]string{"error": message})
}

// WriteComplete sends the finished report
func (s *SSEWriter) WriteComplete(report *types.Report) error {
	return s.WriteEvent(sseEventComplete, report)
}
