package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"MarketPing/internal/domain/models"
	"MarketPing/internal/market"
)

func TestDispatchSlotModeSelection(t *testing.T) {
	tests := []struct {
		hour, minute int
		want         string
	}{
		{9, 20, "open"},
		{10, 0, "intraday"},
		{14, 30, "intraday"},
		{15, 0, "closing"},
	}

	for _, tt := range tests {
		g := &fakeGenerator{report: &models.Report{Sentiment: "Bullish"}}
		d := newTestDispatcher(g, 0)
		if _, mode, err := d.DispatchSlot(context.Background(), tt.hour, tt.minute); err != nil {
			t.Fatalf("%02d:%02d: %v", tt.hour, tt.minute, err)
		} else if string(mode) != tt.want {
			t.Fatalf("%02d:%02d: mode %q, want %q", tt.hour, tt.minute, mode, tt.want)
		}
		if g.lastMode != tt.want {
			t.Fatalf("%02d:%02d: generator called with %q", tt.hour, tt.minute, g.lastMode)
		}
	}
}

func TestDispatchPhaseModeSelection(t *testing.T) {
	tests := []struct {
		phase market.Phase
		want  string
	}{
		{market.PhaseMarket, "adhoc"},
		{market.PhasePreOpen, "pre_open"},
		{market.PhasePostClose, "night"},
		{market.PhaseNight, "night"},
		{market.PhaseWeekend, "weekend"},
	}

	for _, tt := range tests {
		g := &fakeGenerator{report: &models.Report{}}
		d := newTestDispatcher(g, 0)
		_, mode, err := d.DispatchPhase(context.Background(), tt.phase, testNow)
		if err != nil {
			t.Fatalf("phase %s: %v", tt.phase, err)
		}
		if string(mode) != tt.want {
			t.Fatalf("phase %s: mode %q, want %q", tt.phase, mode, tt.want)
		}
	}
}

func TestDispatchPhaseUsesCache(t *testing.T) {
	g := &fakeGenerator{report: &models.Report{}}
	d := newTestDispatcher(g, time.Minute)

	for i := 0; i < 3; i++ {
		if _, _, err := d.DispatchPhase(context.Background(), market.PhaseMarket, testNow); err != nil {
			t.Fatal(err)
		}
	}
	if g.calls != 1 {
		t.Fatalf("expected 1 generator call, got %d", g.calls)
	}
}

func TestDispatchSlotNeverCaches(t *testing.T) {
	g := &fakeGenerator{report: &models.Report{}}
	d := newTestDispatcher(g, time.Minute)

	for i := 0; i < 2; i++ {
		if _, _, err := d.DispatchSlot(context.Background(), 10, 0); err != nil {
			t.Fatal(err)
		}
	}
	if g.calls != 2 {
		t.Fatalf("expected 2 generator calls, got %d", g.calls)
	}
}

func TestDispatchPropagatesGeneratorError(t *testing.T) {
	g := &fakeGenerator{err: errors.New("upstream timeout")}
	d := newTestDispatcher(g, time.Minute)

	if _, _, err := d.DispatchSlot(context.Background(), 9, 20); err == nil {
		t.Fatal("expected error from slot dispatch")
	}
	if _, _, err := d.DispatchPhase(context.Background(), market.PhaseMarket, testNow); err == nil {
		t.Fatal("expected error from phase dispatch")
	}
	// Failures must not be cached.
	g.err = nil
	g.report = &models.Report{}
	if _, _, err := d.DispatchPhase(context.Background(), market.PhaseMarket, testNow); err != nil {
		t.Fatalf("recovery dispatch failed: %v", err)
	}
}
