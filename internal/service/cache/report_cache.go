package cache

import (
	"sync"
	"time"

	"MarketPing/internal/domain/models"
)

type entry struct {
	report *models.Report
	exp    time.Time
}

// ReportCache holds recently generated reports keyed by cacheable
// context (mode plus hour). Scheduled sends are never cached; the cache
// only absorbs bursts of subscriber-initiated requests.
type ReportCache struct {
	mu  sync.RWMutex
	m   map[string]entry
	ttl time.Duration
}

func NewReportCache(ttl time.Duration) *ReportCache {
	return &ReportCache{m: make(map[string]entry), ttl: ttl}
}

func (c *ReportCache) Get(key string) (*models.Report, bool) {
	c.mu.RLock()
	e, ok := c.m[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(e.exp) {
		c.mu.Lock()
		delete(c.m, key)
		c.mu.Unlock()
		return nil, false
	}
	return e.report, true
}

func (c *ReportCache) Set(key string, r *models.Report) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.m[key] = entry{report: r, exp: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}
