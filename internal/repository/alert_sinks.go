package repository

import (
	"context"
	"database/sql"
	"fmt"

	"MarketPing/internal/domain/models"
	domainrepo "MarketPing/internal/domain/repository"
	pkgkafka "MarketPing/pkg/kafka"
)

// AlertHistorySchema creates the delivery history table. Passed to the
// clickhouse client's InitSchema on startup when the backend is enabled.
func AlertHistorySchema(table string) []string {
	return []string{fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		ts DateTime64(3),
		address String,
		trigger String,
		mode String,
		status String,
		message_id String,
		error String
	) ENGINE = MergeTree() ORDER BY (ts, address)`, table)}
}

// ClickHouseAlertSink persists delivery attempts for querying.
type ClickHouseAlertSink struct {
	db    *sql.DB
	table string
	close func() error
}

func NewClickHouseAlertSink(db *sql.DB, table string, closeFn func() error) domainrepo.AlertSink {
	return &ClickHouseAlertSink{db: db, table: table, close: closeFn}
}

func (s *ClickHouseAlertSink) Record(ctx context.Context, e *models.AlertEvent) error {
	q := fmt.Sprintf("INSERT INTO %s (ts, address, trigger, mode, status, message_id, error) VALUES (?, ?, ?, ?, ?, ?, ?)", s.table)
	_, err := s.db.ExecContext(ctx, q,
		e.Timestamp,
		e.Address,
		e.Trigger,
		e.Mode,
		e.Status,
		e.MessageID,
		e.Error,
	)
	if err != nil {
		return fmt.Errorf("record alert: %w", err)
	}
	return nil
}

func (s *ClickHouseAlertSink) Close() error {
	if s.close != nil {
		return s.close()
	}
	return nil
}

// KafkaAlertSink publishes delivery attempts to a topic for downstream
// consumers, keyed by address so per-subscriber history stays ordered.
type KafkaAlertSink struct {
	producer *pkgkafka.Producer
	topic    string
}

func NewKafkaAlertSink(producer *pkgkafka.Producer, topic string) domainrepo.AlertSink {
	return &KafkaAlertSink{producer: producer, topic: topic}
}

func (s *KafkaAlertSink) Record(ctx context.Context, e *models.AlertEvent) error {
	return s.producer.Publish(ctx, s.topic, []byte(e.Address), e)
}

func (s *KafkaAlertSink) Close() error {
	return s.producer.Close()
}

// NopAlertSink is the default when no history backend is configured.
type NopAlertSink struct{}

func (NopAlertSink) Record(ctx context.Context, e *models.AlertEvent) error { return nil }
func (NopAlertSink) Close() error                                           { return nil }
