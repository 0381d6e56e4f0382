package market

import (
	"testing"
	"time"
)

func at(wd time.Weekday, hour, min int) time.Time {
	// 2024-09-02 is a Monday.
	base := time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, int(wd-time.Monday)).Add(
		time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want Phase
	}{
		{"monday midnight", at(time.Monday, 0, 0), PhasePreOpen},
		{"just before open", at(time.Monday, 9, 14), PhasePreOpen},
		{"open", at(time.Monday, 9, 15), PhaseMarket},
		{"mid session", at(time.Wednesday, 12, 0), PhaseMarket},
		{"close inclusive", at(time.Monday, 15, 30), PhaseMarket},
		{"just after close", at(time.Monday, 15, 31), PhasePostClose},
		{"post close edge", at(time.Monday, 18, 0), PhasePostClose},
		{"evening", at(time.Monday, 18, 1), PhaseNight},
		{"late night", at(time.Friday, 23, 59), PhaseNight},
		{"saturday", at(time.Saturday, 12, 0), PhaseWeekend},
		{"sunday pre-open hours", at(time.Sunday, 8, 0), PhaseWeekend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.t); got != tt.want {
				t.Fatalf("Classify(%v) = %q, want %q", tt.t, got, tt.want)
			}
		})
	}
}

func TestClassifyPartitionsWeek(t *testing.T) {
	// Every (weekday, minute) combination must land in exactly one phase.
	for wd := time.Monday; wd <= time.Friday; wd++ {
		for m := 0; m < 24*60; m++ {
			got := Classify(at(wd, m/60, m%60))
			if got == PhaseWeekend {
				t.Fatalf("weekday %v minute %d classified as weekend", wd, m)
			}
			if got == "" {
				t.Fatalf("weekday %v minute %d has no phase", wd, m)
			}
		}
	}
}
