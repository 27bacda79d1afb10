package goLaunch

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"
)

const (
	// TelemetryKindIdentify is an exported constant or variable used by the bootstrap coordinator.
	TelemetryKindIdentify = "identify"

	// TelemetryKindCapture is an exported constant or variable used by the bootstrap coordinator.
	TelemetryKindCapture = "capture"
)

type TelemetryEvent struct {
	Timestamp time.Time         `json:"timestamp"`
	Kind      string            `json:"kind"`
	Name      string            `json:"name,omitempty"`
	UserID    string            `json:"user_id,omitempty"`
	AttemptID string            `json:"attempt_id,omitempty"`
	Channel   string            `json:"channel,omitempty"`
	Props     map[string]string `json:"props,omitempty"`
}

type TelemetrySink interface {
	Emit(ctx context.Context, event TelemetryEvent)
}

type NoOpSink struct{}

func (NoOpSink) Emit(context.Context, TelemetryEvent) {}

type ChannelSink struct {
	events chan TelemetryEvent
}

func NewChannelSink(buffer int) *ChannelSink {
	if buffer <= 0 {
		buffer = 1
	}
	return &ChannelSink{
		events: make(chan TelemetryEvent, buffer),
	}
}

func (s *ChannelSink) Emit(ctx context.Context, event TelemetryEvent) {
	select {
	case s.events <- event:
	case <-ctx.Done():
	}
}

func (s *ChannelSink) Events() <-chan TelemetryEvent {
	return s.events
}

type JSONWriterSink struct {
	writer io.Writer
	mu     sync.Mutex
}

func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return &JSONWriterSink{
		writer: w,
	}
}

func (s *JSONWriterSink) Emit(ctx context.Context, event TelemetryEvent) {
	if s == nil || s.writer == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = s.writer.Write(data)
	_, _ = s.writer.Write([]byte("\n"))
}
