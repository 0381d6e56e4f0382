package repository

import (
	"context"

	"MarketPing/internal/domain/models"
)

// ReportGenerator produces market commentary. Calls may take tens of
// seconds; callers decide whether to block on them.
type ReportGenerator interface {
	MarketOpen(ctx context.Context) (*models.Report, error)
	Intraday(ctx context.Context, hour int) (*models.Report, error)
	Closing(ctx context.Context) (*models.Report, error)
	Adhoc(ctx context.Context, hour int) (*models.Report, error)
	PreOpen(ctx context.Context) (*models.Report, error)
	NextDay(ctx context.Context) (*models.Report, error)
	Weekend(ctx context.Context) (*models.Report, error)
}

// Messenger delivers one text body to one address and returns the
// transport's delivery receipt.
type Messenger interface {
	Send(ctx context.Context, to, body string) (string, error)
}

// SubscriberStore owns the subscriber set. Implementations must serialize
// concurrent add/remove/list calls against each other.
type SubscriberStore interface {
	Add(ctx context.Context, address string) error
	Remove(ctx context.Context, address string) error
	ListAll(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
}

// AlertSink records delivery attempts for later inspection. Recording is
// best effort; a sink error never fails the delivery it describes.
type AlertSink interface {
	Record(ctx context.Context, e *models.AlertEvent) error
	Close() error
}

// EventStream fans application events out to connected ops clients.
// Publishing must never block the caller.
type EventStream interface {
	Publish(event string, payload interface{})
}

// Metrics abstracts the prometheus recorder.
type Metrics interface {
	RecordReport(mode string)
	RecordDelivery(status string)
	RecordBroadcastSize(n int)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
}
