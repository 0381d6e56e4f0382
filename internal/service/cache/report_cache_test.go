package cache

import (
	"testing"
	"time"

	"MarketPing/internal/domain/models"
)

func TestReportCacheExpiry(t *testing.T) {
	c := NewReportCache(20 * time.Millisecond)
	r := &models.Report{Sentiment: "Bullish"}

	c.Set("adhoc:12", r)
	if got, ok := c.Get("adhoc:12"); !ok || got != r {
		t.Fatal("expected cached report before expiry")
	}

	time.Sleep(30 * time.Millisecond)
	if _, ok := c.Get("adhoc:12"); ok {
		t.Fatal("expected cache miss after expiry")
	}
}

func TestReportCacheZeroTTLDisables(t *testing.T) {
	c := NewReportCache(0)
	c.Set("adhoc:12", &models.Report{})
	if _, ok := c.Get("adhoc:12"); ok {
		t.Fatal("zero TTL must disable caching")
	}
}
