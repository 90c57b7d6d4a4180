package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"repairflow/internal/domain/entities"
	"repairflow/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaCompletionPublisher writes completion events to a Kafka topic, keyed by
// order id so events for one order stay on one partition.
type KafkaCompletionPublisher struct {
	writer messageWriter
	topic  string
}

var _ interfaces.ICompletionPublisher = (*KafkaCompletionPublisher)(nil)

func NewKafkaCompletionPublisher(brokers []string, topic string) *KafkaCompletionPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		MaxAttempts:            3,
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           5 * time.Second,
		AllowAutoTopicCreation: true,
	}
	zap.L().Info("[completion][kafka] writer initialized", zap.Strings("brokers", brokers), zap.String("topic", topic))
	return &KafkaCompletionPublisher{writer: w, topic: topic}
}

func (p *KafkaCompletionPublisher) PublishCompletion(ctx context.Context, event entities.CompletionEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode completion event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
		Time:  event.CompletedAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("repair.completed")},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write completion event to %s: %w", p.topic, err)
	}
	zap.L().Debug("[completion][kafka] event written", zap.String("order_id", event.OrderID), zap.String("report_id", event.ReportID))
	return nil
}

func (p *KafkaCompletionPublisher) Close() error {
	zap.L().Info("[completion][kafka] closing writer")
	return p.writer.Close()
}

// LogCompletionPublisher records completion events in the application log. It
// is used when no brokers are configured.
type LogCompletionPublisher struct {
	log *zap.Logger
}

var _ interfaces.ICompletionPublisher = (*LogCompletionPublisher)(nil)

func NewLogCompletionPublisher(log *zap.Logger) *LogCompletionPublisher {
	if log == nil {
		log = zap.L()
	}
	return &LogCompletionPublisher{log: log}
}

func (p *LogCompletionPublisher) PublishCompletion(ctx context.Context, event entities.CompletionEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.log.Info("[completion][log] repair completed",
		zap.String("order_id", event.OrderID),
		zap.String("report_id", event.ReportID),
		zap.String("technician_id", event.TechnicianID),
		zap.String("customer_id", event.CustomerID),
		zap.Float64("amount", event.Amount),
		zap.Time("completed_at", event.CompletedAt))
	return nil
}
