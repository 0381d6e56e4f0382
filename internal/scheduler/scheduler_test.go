package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"MarketPing/internal/domain/models"
	"MarketPing/internal/service/cache"
	"MarketPing/internal/usecase"
	"MarketPing/pkg/logger"
)

type stubGenerator struct {
	mu    sync.Mutex
	modes []string
}

func (g *stubGenerator) record(mode string) (*models.Report, error) {
	g.mu.Lock()
	g.modes = append(g.modes, mode)
	g.mu.Unlock()
	return &models.Report{Sentiment: "Neutral"}, nil
}

func (g *stubGenerator) MarketOpen(context.Context) (*models.Report, error) { return g.record("open") }
func (g *stubGenerator) Intraday(_ context.Context, hour int) (*models.Report, error) {
	return g.record("intraday")
}
func (g *stubGenerator) Closing(context.Context) (*models.Report, error) { return g.record("closing") }
func (g *stubGenerator) Adhoc(_ context.Context, hour int) (*models.Report, error) {
	return g.record("adhoc")
}
func (g *stubGenerator) PreOpen(context.Context) (*models.Report, error) {
	return g.record("pre_open")
}
func (g *stubGenerator) NextDay(context.Context) (*models.Report, error) { return g.record("night") }
func (g *stubGenerator) Weekend(context.Context) (*models.Report, error) {
	return g.record("weekend")
}

type stubStore struct{ addresses []string }

func (s *stubStore) Add(context.Context, string) error      { return nil }
func (s *stubStore) Remove(context.Context, string) error   { return nil }
func (s *stubStore) ListAll(context.Context) ([]string, error) { return s.addresses, nil }
func (s *stubStore) Count(context.Context) (int64, error)   { return int64(len(s.addresses)), nil }

type stubMessenger struct {
	mu   sync.Mutex
	sent int
}

func (m *stubMessenger) Send(context.Context, string, string) (string, error) {
	m.mu.Lock()
	m.sent++
	m.mu.Unlock()
	return "SM1", nil
}

type stubSink struct{}

func (stubSink) Record(context.Context, *models.AlertEvent) error { return nil }
func (stubSink) Close() error                                     { return nil }

type stubEvents struct{}

func (stubEvents) Publish(string, interface{}) {}

type stubMetrics struct{}

func (stubMetrics) RecordReport(string)           {}
func (stubMetrics) RecordDelivery(string)         {}
func (stubMetrics) RecordBroadcastSize(int)       {}
func (stubMetrics) RecordError(string)            {}
func (stubMetrics) RecordLatency(string, float64) {}

func newTestScheduler(t *testing.T, g *stubGenerator, m *stubMessenger) *Scheduler {
	t.Helper()
	log, err := logger.New(&logger.Config{Level: "error", Format: "json"})
	if err != nil {
		t.Fatal(err)
	}
	d := usecase.NewDispatcher(g, usecase.NewFormatter(), cache.NewReportCache(0), stubMetrics{}, log, time.UTC)
	b := usecase.NewBroadcaster(&stubStore{addresses: []string{"+1", "+2"}}, m, stubSink{}, stubEvents{}, stubMetrics{}, log)
	return New(d, b, time.UTC, log)
}

func TestTriggerMapping(t *testing.T) {
	tests := []struct {
		trigger  string
		wantMode string
	}{
		{"open", "open"},
		{"noon", "intraday"},
		{"closing", "closing"},
		{"night", "night"},
		{"weekend", "weekend"},
	}

	for _, tt := range tests {
		t.Run(tt.trigger, func(t *testing.T) {
			g := &stubGenerator{}
			m := &stubMessenger{}
			result, err := newTestScheduler(t, g, m).Trigger(context.Background(), tt.trigger)
			if err != nil {
				t.Fatal(err)
			}
			if result.Sent != 2 {
				t.Fatalf("expected broadcast to 2 subscribers, got %+v", result)
			}
			if len(g.modes) != 1 || g.modes[0] != tt.wantMode {
				t.Fatalf("generator modes = %v, want [%s]", g.modes, tt.wantMode)
			}
		})
	}
}

func TestTriggerUnknownName(t *testing.T) {
	s := newTestScheduler(t, &stubGenerator{}, &stubMessenger{})
	if _, err := s.Trigger(context.Background(), "bogus"); err == nil {
		t.Fatal("expected error for unknown trigger")
	}
}

func TestStartRegistersAllSlots(t *testing.T) {
	s := newTestScheduler(t, &stubGenerator{}, &stubMessenger{})
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	defer s.Stop(context.Background())

	if got := len(s.NextRuns()); got != 8 {
		t.Fatalf("expected 8 scheduled entries, got %d", got)
	}
}
