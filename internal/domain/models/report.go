package models

import "time"

// Report is the structured commentary produced by the report generator.
// Every field is optional: the generator is an external LLM and partial
// output must render, not crash. Defaults are applied at the formatter
// boundary, not here.
type Report struct {
	Sentiment         string      `json:"sentiment,omitempty"`
	Theme             string      `json:"theme,omitempty"`
	DaySummary        string      `json:"day_summary,omitempty"`
	NiftyLevel        string      `json:"nifty_level,omitempty"`
	NiftySupport      string      `json:"nifty_support,omitempty"`
	NiftyResistance   string      `json:"nifty_resistance,omitempty"`
	NiftyOpenEstimate string      `json:"nifty_open_estimate,omitempty"`
	Stocks            []StockPick `json:"stocks,omitempty"`
	SectorsToWatch    []string    `json:"sectors_to_watch,omitempty"`
	AvoidSectors      []string    `json:"avoid_sectors,omitempty"`
	NextDayOutlook    string      `json:"next_day_outlook,omitempty"`
	GlobalCues        string      `json:"global_cues,omitempty"`
	KeyEvents         string      `json:"key_events,omitempty"`
	Disclaimer        string      `json:"disclaimer,omitempty"`
}

// StockPick is one recommended trade inside a report. Numeric fields are
// pointers so an absent value is distinguishable from zero.
type StockPick struct {
	Symbol        string   `json:"symbol,omitempty"`
	Exchange      string   `json:"exchange,omitempty"`
	Sector        string   `json:"sector,omitempty"`
	Reason        string   `json:"reason,omitempty"`
	EntryLow      *float64 `json:"entry_low,omitempty"`
	EntryHigh     *float64 `json:"entry_high,omitempty"`
	Target        *float64 `json:"target,omitempty"`
	StopLoss      *float64 `json:"stop_loss,omitempty"`
	Upside        *float64 `json:"upside,omitempty"`
	RiskReward    string   `json:"risk_reward,omitempty"`
	HoldingPeriod string   `json:"holding_period,omitempty"`
}

// AlertEvent records one outbound delivery attempt for the history sink
// and the ops event stream.
type AlertEvent struct {
	Timestamp time.Time `json:"ts"`
	Address   string    `json:"address"`
	Trigger   string    `json:"trigger"` // slot id, phase, or "inbound"
	Mode      string    `json:"mode"`
	Status    string    `json:"status"` // sent | failed
	MessageID string    `json:"message_id,omitempty"`
	Error     string    `json:"error,omitempty"`
}

const (
	DeliverySent   = "sent"
	DeliveryFailed = "failed"
)
