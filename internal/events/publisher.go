package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"storeops/internal/logger"
)

// Topic carries one event per handled command for the audit worker.
const Topic = "command-events"

// CommandEvent describes one command invocation.
type CommandEvent struct {
	ID         string    `json:"id"`
	Command    string    `json:"command"`
	Status     int       `json:"status"`
	DurationMs int64     `json:"duration_ms"`
	Timestamp  time.Time `json:"timestamp"`
}

// Publisher writes command events to Kafka. It is an optional integration:
// without configured brokers no Publisher exists and commands run unaudited.
type Publisher struct {
	writer *kafka.Writer
	logger *logger.Logger
}

func NewPublisher(brokers string, log *logger.Logger) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(brokers, ",")...),
		Topic:        Topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: time.Second,
	}
	return &Publisher{writer: writer, logger: log}
}

// Publish emits one command event. Failures are logged and swallowed; audit
// is best-effort and never fails a command.
func (p *Publisher) Publish(ctx context.Context, command string, status int, duration time.Duration) {
	event := CommandEvent{
		ID:         uuid.New().String(),
		Command:    command,
		Status:     status,
		DurationMs: duration.Milliseconds(),
		Timestamp:  time.Now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal command event: %v", err)
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Command),
		Value: value,
	})
	if err != nil {
		p.logger.Error("Failed to publish command event: %v", err)
	}
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
