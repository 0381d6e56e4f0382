package market

import "time"

// Phase classifies a moment of the trading week.
type Phase string

const (
	PhasePreOpen   Phase = "pre_open"
	PhaseMarket    Phase = "market"
	PhasePostClose Phase = "post_close"
	PhaseNight     Phase = "night"
	PhaseWeekend   Phase = "weekend"
)

// NSE session boundaries in minutes since midnight.
const (
	openMinute      = 9*60 + 15  // 09:15
	closeMinute     = 15*60 + 30 // 15:30, inclusive
	postCloseMinute = 18 * 60    // 18:00, inclusive
)

// Classify maps an already-localized timestamp to a trading phase.
// Pure and total; the caller is responsible for supplying local time.
func Classify(t time.Time) Phase {
	wd := t.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return PhaseWeekend
	}
	mins := t.Hour()*60 + t.Minute()
	switch {
	case mins < openMinute:
		return PhasePreOpen
	case mins <= closeMinute:
		return PhaseMarket
	case mins <= postCloseMinute:
		return PhasePostClose
	default:
		return PhaseNight
	}
}
