package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"MarketPing/internal/domain/models"
	"MarketPing/internal/service/cache"
	"MarketPing/pkg/logger"
)

func testLogger() *logger.Logger {
	l, err := logger.New(&logger.Config{Level: "error", Format: "json"})
	if err != nil {
		panic(err)
	}
	return l
}

type fakeGenerator struct {
	report   *models.Report
	err      error
	lastMode string
	calls    int
}

func (g *fakeGenerator) record(mode string) (*models.Report, error) {
	g.lastMode = mode
	g.calls++
	return g.report, g.err
}

func (g *fakeGenerator) MarketOpen(ctx context.Context) (*models.Report, error) {
	return g.record("open")
}

func (g *fakeGenerator) Intraday(ctx context.Context, hour int) (*models.Report, error) {
	return g.record("intraday")
}

func (g *fakeGenerator) Closing(ctx context.Context) (*models.Report, error) {
	return g.record("closing")
}

func (g *fakeGenerator) Adhoc(ctx context.Context, hour int) (*models.Report, error) {
	return g.record("adhoc")
}

func (g *fakeGenerator) PreOpen(ctx context.Context) (*models.Report, error) {
	return g.record("pre_open")
}

func (g *fakeGenerator) NextDay(ctx context.Context) (*models.Report, error) {
	return g.record("night")
}

func (g *fakeGenerator) Weekend(ctx context.Context) (*models.Report, error) {
	return g.record("weekend")
}

type fakeStore struct {
	mu      sync.Mutex
	set     map[string]bool
	addErr  error
	listErr error
}

func newFakeStore(addresses ...string) *fakeStore {
	s := &fakeStore{set: make(map[string]bool)}
	for _, a := range addresses {
		s.set[a] = true
	}
	return s
}

func (s *fakeStore) Add(ctx context.Context, address string) error {
	if s.addErr != nil {
		return s.addErr
	}
	s.mu.Lock()
	s.set[address] = true
	s.mu.Unlock()
	return nil
}

func (s *fakeStore) Remove(ctx context.Context, address string) error {
	s.mu.Lock()
	delete(s.set, address)
	s.mu.Unlock()
	return nil
}

func (s *fakeStore) ListAll(ctx context.Context) ([]string, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.set))
	for a := range s.set {
		out = append(out, a)
	}
	sort.Strings(out)
	return out, nil
}

func (s *fakeStore) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.set)), nil
}

type fakeMessenger struct {
	mu     sync.Mutex
	sent   []string // addresses in send order
	bodies []string
	failTo map[string]bool
}

func (m *fakeMessenger) Send(ctx context.Context, to, body string) (string, error) {
	if m.failTo[to] {
		return "", errors.New("transport down")
	}
	m.mu.Lock()
	m.sent = append(m.sent, to)
	m.bodies = append(m.bodies, body)
	m.mu.Unlock()
	return "SM" + to, nil
}

type fakeSink struct {
	mu     sync.Mutex
	events []*models.AlertEvent
}

func (s *fakeSink) Record(ctx context.Context, e *models.AlertEvent) error {
	s.mu.Lock()
	s.events = append(s.events, e)
	s.mu.Unlock()
	return nil
}

func (s *fakeSink) Close() error { return nil }

type fakeEvents struct {
	mu        sync.Mutex
	published []string
}

func (e *fakeEvents) Publish(event string, payload interface{}) {
	e.mu.Lock()
	e.published = append(e.published, event)
	e.mu.Unlock()
}

type fakeMetrics struct{}

func (fakeMetrics) RecordReport(string)           {}
func (fakeMetrics) RecordDelivery(string)         {}
func (fakeMetrics) RecordBroadcastSize(int)       {}
func (fakeMetrics) RecordError(string)            {}
func (fakeMetrics) RecordLatency(string, float64) {}

type fakeQueue struct {
	mu       sync.Mutex
	messages []interface{}
	err      error
}

func (q *fakeQueue) PublishMessage(ctx context.Context, msgType string, payload interface{}) error {
	if q.err != nil {
		return q.err
	}
	q.mu.Lock()
	q.messages = append(q.messages, payload)
	q.mu.Unlock()
	return nil
}

func newTestDispatcher(g *fakeGenerator, ttl time.Duration) *Dispatcher {
	return NewDispatcher(g, NewFormatter(), cache.NewReportCache(ttl), fakeMetrics{}, testLogger(), time.UTC)
}
