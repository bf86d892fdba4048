package reports

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"storeops/internal/logger"
)

// Store persists analysis snapshots and command audit events. It is optional:
// commands never read these tables, so a nil Store just skips persistence and
// the remote store stays the only system of record.
type Store struct {
	db     *gorm.DB
	logger *logger.Logger
}

// Snapshot is one saved analysis result, payload serialized as JSON.
type Snapshot struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Kind      string    `json:"kind"`
	Payload   string    `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
}

// CommandEvent is one audit row for a handled command.
type CommandEvent struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	Command    string    `json:"command"`
	Status     int       `json:"status"`
	DurationMs int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

func New(databaseURL string, log *logger.Logger) (*Store, error) {
	var db *gorm.DB
	var err error

	if strings.HasPrefix(databaseURL, "sqlite://") {
		// SQLite for development
		dbPath := strings.TrimPrefix(databaseURL, "sqlite://")
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
	} else {
		// PostgreSQL for production
		db, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to reports database: %w", err)
	}

	createTablesSQL := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		payload TEXT NOT NULL,
		created_at TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS command_events (
		id TEXT PRIMARY KEY,
		command TEXT NOT NULL,
		status INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		created_at TIMESTAMP
	);
	`
	if err := db.Exec(createTablesSQL).Error; err != nil {
		return nil, fmt.Errorf("failed to create report tables: %w", err)
	}

	return &Store{db: db, logger: log}, nil
}

// SaveSnapshot serializes an analysis result and stores it under its kind
// (e.g. "sales", "customer_behavior").
func (s *Store) SaveSnapshot(kind string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s snapshot: %w", kind, err)
	}
	snapshot := Snapshot{
		ID:        uuid.New().String(),
		Kind:      kind,
		Payload:   string(data),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.db.Create(&snapshot).Error; err != nil {
		return fmt.Errorf("save %s snapshot: %w", kind, err)
	}
	return nil
}

// RecentSnapshots returns the newest snapshots of a kind, newest first.
func (s *Store) RecentSnapshots(kind string, limit int) ([]Snapshot, error) {
	var snapshots []Snapshot
	err := s.db.Where("kind = ?", kind).
		Order("created_at DESC").
		Limit(limit).
		Find(&snapshots).Error
	if err != nil {
		return nil, fmt.Errorf("load %s snapshots: %w", kind, err)
	}
	return snapshots, nil
}

// SaveCommandEvent stores one audit row. Missing ids and timestamps are
// filled in so the kafka consumer can pass events through unchanged.
func (s *Store) SaveCommandEvent(event CommandEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	if err := s.db.Create(&event).Error; err != nil {
		return fmt.Errorf("save command event: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
