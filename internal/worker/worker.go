package worker

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"storeops/internal/config"
	"storeops/internal/events"
	"storeops/internal/logger"
	"storeops/internal/reports"
)

// Worker consumes command events and persists them as audit rows. Without a
// configured reports store the events are only logged.
type Worker struct {
	config  *config.Config
	logger  *logger.Logger
	reader  *kafka.Reader
	reports *reports.Store
}

func New(cfg *config.Config, log *logger.Logger, rep *reports.Store) *Worker {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        strings.Split(cfg.KafkaBrokers, ","),
		GroupID:        "storeops-audit",
		Topic:          events.Topic,
		MinBytes:       10e3, // 10KB
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
	})

	return &Worker{
		config:  cfg,
		logger:  log,
		reader:  reader,
		reports: rep,
	}
}

func (w *Worker) Start() {
	w.logger.Info("Audit worker started, listening for command events...")

	for {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		message, err := w.reader.ReadMessage(ctx)
		cancel()

		if err != nil {
			w.logger.Error("Failed to read message: %v", err)
			continue
		}

		var event events.CommandEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			w.logger.Error("Failed to parse command event: %v", err)
			continue
		}

		w.logger.Debug("Command %s finished with status %d in %dms",
			event.Command, event.Status, event.DurationMs)

		if w.reports == nil {
			continue
		}
		err = w.reports.SaveCommandEvent(reports.CommandEvent{
			ID:         event.ID,
			Command:    event.Command,
			Status:     event.Status,
			DurationMs: event.DurationMs,
			CreatedAt:  event.Timestamp,
		})
		if err != nil {
			w.logger.Error("Failed to persist command event: %v", err)
		}
	}
}

func (w *Worker) Stop() {
	w.logger.Info("Stopping audit worker...")
	w.reader.Close()
}
