package usecase

import (
	"strings"
	"testing"
	"time"

	"MarketPing/internal/domain/models"
)

func f64(v float64) *float64 { return &v }

func sampleReport(picks int) *models.Report {
	r := &models.Report{
		Sentiment:  "Bullish",
		Theme:      "IT rally on strong US cues",
		NiftyLevel: "24,300 (+0.8%)",
	}
	for i := 0; i < picks; i++ {
		r.Stocks = append(r.Stocks, models.StockPick{
			Symbol:    "TCS",
			Exchange:  "NSE",
			Sector:    "IT",
			Reason:    "Breakout above resistance with volume",
			EntryLow:  f64(4100),
			EntryHigh: f64(4120),
			Target:    f64(4200),
			StopLoss:  f64(4050),
			Upside:    f64(2.1),
		})
	}
	return r
}

var testNow = time.Date(2024, 9, 2, 10, 0, 0, 0, time.UTC)

func TestFormatCapsLength(t *testing.T) {
	r := sampleReport(4)
	for i := range r.Stocks {
		r.Stocks[i].Reason = strings.Repeat("very long reason ", 40)
	}
	f := NewFormatter()
	for _, mode := range []Mode{ModeOpen, ModeIntraday, ModeClosing, ModeAdhoc, ModePreOpen, ModeNight, ModeWeekend} {
		msg := f.Format(r, mode, "📊 10 AM UPDATE", testNow)
		if n := len([]rune(msg)); n > 1590 {
			t.Fatalf("mode %s produced %d runes", mode, n)
		}
	}
}

func TestFormatEmptyReport(t *testing.T) {
	msg := NewFormatter().Format(&models.Report{}, ModeAdhoc, "", testNow)
	if !strings.Contains(msg, "N/A") {
		t.Fatalf("empty report must render placeholders, got:\n%s", msg)
	}
	if !strings.Contains(msg, "For educational purposes only") {
		t.Fatal("default disclaimer missing")
	}

	msg = NewFormatter().Format(nil, ModeOpen, "🌅 MARKET OPEN", testNow)
	if msg == "" {
		t.Fatal("nil report must still render")
	}
}

func TestFormatPickCaps(t *testing.T) {
	f := NewFormatter()

	day := f.Format(sampleReport(5), ModeOpen, "🌅 MARKET OPEN", testNow)
	if strings.Contains(day, "*4. ") {
		t.Fatal("daytime modes must cap at 3 picks")
	}
	if !strings.Contains(day, "*3. ") {
		t.Fatal("expected 3 picks rendered")
	}

	night := f.Format(sampleReport(5), ModeNight, "", testNow)
	if !strings.Contains(night, "*4. ") {
		t.Fatal("night mode must render 4 picks")
	}
	if strings.Contains(night, "*5. ") {
		t.Fatal("night mode must cap at 4 picks")
	}
}

func TestFormatSentimentEmoji(t *testing.T) {
	tests := []struct {
		sentiment string
		want      string
	}{
		{"Bullish", "🟢"},
		{"Cautiously Bearish", "🔴"},
		{"Neutral", "🟡"},
		{"", "⚪"},
	}
	f := NewFormatter()
	for _, tt := range tests {
		msg := f.Format(&models.Report{Sentiment: tt.sentiment}, ModeAdhoc, "", testNow)
		if !strings.Contains(msg, tt.want) {
			t.Fatalf("sentiment %q: expected %s in message", tt.sentiment, tt.want)
		}
	}
}

func TestFormatIntradayHidesHoldingPeriod(t *testing.T) {
	f := NewFormatter()
	intraday := f.Format(sampleReport(1), ModeIntraday, "📊 10 AM UPDATE", testNow)
	if strings.Contains(intraday, "Hold") {
		t.Fatal("intraday picks must not show holding period")
	}
	open := f.Format(sampleReport(1), ModeOpen, "🌅 MARKET OPEN", testNow)
	if !strings.Contains(open, "Hold") {
		t.Fatal("open picks must show holding period")
	}
}

func TestFormatClosingExtras(t *testing.T) {
	r := sampleReport(1)
	r.DaySummary = "Nifty closed 0.8% higher led by IT"
	r.NextDayOutlook = "Positive bias above 24,200"

	msg := NewFormatter().Format(r, ModeClosing, "🌆 CLOSING UPDATE", testNow)
	if !strings.Contains(msg, r.DaySummary) {
		t.Fatal("closing message missing day summary")
	}
	if !strings.Contains(msg, "Tomorrow") {
		t.Fatal("closing message missing next-day outlook")
	}
}

func TestFormatMissingNumbersRenderPlaceholder(t *testing.T) {
	r := &models.Report{Stocks: []models.StockPick{{Symbol: "INFY"}}}
	msg := NewFormatter().Format(r, ModeAdhoc, "", testNow)
	if !strings.Contains(msg, "₹?") {
		t.Fatalf("absent prices must render as ?, got:\n%s", msg)
	}
	if !strings.Contains(msg, "[NSE]") {
		t.Fatal("exchange default missing")
	}
}
