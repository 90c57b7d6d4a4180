package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"repairflow/internal/domain/entities"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stubWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *stubWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *stubWriter) Close() error {
	w.closed = true
	return nil
}

func sampleEvent() entities.CompletionEvent {
	return entities.CompletionEvent{
		OrderID:      "order-1",
		ReportID:     "rep-1",
		TechnicianID: "tech-1",
		CustomerID:   "cust-1",
		Amount:       320,
		CompletedAt:  time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC),
	}
}

func TestKafkaCompletionPublisher(t *testing.T) {
	t.Run("writes keyed json message", func(t *testing.T) {
		w := &stubWriter{}
		p := &KafkaCompletionPublisher{writer: w, topic: "repair_completed"}

		if err := p.PublishCompletion(context.Background(), sampleEvent()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(w.msgs) != 1 || string(w.msgs[0].Key) != "order-1" {
			t.Fatalf("unexpected messages: %+v", w.msgs)
		}
		var decoded entities.CompletionEvent
		if err := json.Unmarshal(w.msgs[0].Value, &decoded); err != nil {
			t.Fatalf("payload is not json: %v", err)
		}
		if decoded.ReportID != "rep-1" || decoded.Amount != 320 {
			t.Fatalf("unexpected payload: %+v", decoded)
		}
	})

	t.Run("write failure is returned", func(t *testing.T) {
		p := &KafkaCompletionPublisher{writer: &stubWriter{err: errors.New("leader not available")}, topic: "repair_completed"}
		if err := p.PublishCompletion(context.Background(), sampleEvent()); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("close closes writer", func(t *testing.T) {
		w := &stubWriter{}
		p := &KafkaCompletionPublisher{writer: w}
		if err := p.Close(); err != nil || !w.closed {
			t.Fatalf("expected writer closed, got %v", err)
		}
	})
}

func TestLogCompletionPublisher(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	p := NewLogCompletionPublisher(zap.New(core))

	if err := p.PublishCompletion(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries := logs.FilterMessage("[completion][log] repair completed").All()
	if len(entries) != 1 || entries[0].ContextMap()["order_id"] != "order-1" {
		t.Fatalf("unexpected log entries: %+v", entries)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.PublishCompletion(ctx, sampleEvent()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
