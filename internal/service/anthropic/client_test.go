package anthropic

import (
	"strings"
	"testing"
)

func TestParseReport(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"plain json", `{"sentiment": "Bullish", "nifty_level": "24,300"}`},
		{"json fence", "```json\n{\"sentiment\": \"Bullish\", \"nifty_level\": \"24,300\"}\n```"},
		{"bare fence", "```\n{\"sentiment\": \"Bullish\", \"nifty_level\": \"24,300\"}\n```"},
		{"surrounding prose", "Here is the report:\n{\"sentiment\": \"Bullish\", \"nifty_level\": \"24,300\"}\nLet me know."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := parseReport(tt.raw)
			if err != nil {
				t.Fatal(err)
			}
			if report.Sentiment != "Bullish" || report.NiftyLevel != "24,300" {
				t.Fatalf("unexpected report %+v", report)
			}
		})
	}
}

func TestParseReportStocks(t *testing.T) {
	raw := `{
		"sentiment": "Bullish",
		"stocks": [
			{"symbol": "TCS", "entry_low": 4100, "entry_high": 4120, "target": 4200, "stop_loss": 4050, "upside": 2.1}
		]
	}`
	report, err := parseReport(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Stocks) != 1 {
		t.Fatalf("expected 1 pick, got %d", len(report.Stocks))
	}
	pick := report.Stocks[0]
	if pick.Symbol != "TCS" || pick.EntryLow == nil || *pick.EntryLow != 4100 {
		t.Fatalf("unexpected pick %+v", pick)
	}
	if pick.Exchange != "" {
		t.Fatal("absent exchange must stay empty, defaults apply downstream")
	}
}

func TestParseReportRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "no json here", "{truncated"} {
		if _, err := parseReport(raw); err == nil {
			t.Fatalf("expected parse error for %q", raw)
		}
	}
}

func TestIntradayPromptContext(t *testing.T) {
	if !strings.Contains(intradayPrompt(10), "opening range breakouts") {
		t.Fatal("hour 10 context missing")
	}
	if !strings.Contains(intradayPrompt(14), "F&O expiry") {
		t.Fatal("hour 14 context missing")
	}
	if !strings.Contains(intradayPrompt(16), "current 16:00 session") {
		t.Fatal("fallback context missing")
	}
}

func TestPromptsRequestJSON(t *testing.T) {
	prompts := map[string]string{
		"open":    marketOpenPrompt(),
		"closing": closingPrompt(),
		"adhoc":   adhocPrompt(12),
		"preopen": preOpenPrompt(),
		"nextday": nextDayPrompt(),
		"weekend": weekendPrompt(),
	}
	for name, p := range prompts {
		if !strings.Contains(p, "Return this JSON") {
			t.Fatalf("%s prompt does not request JSON", name)
		}
		if !strings.Contains(p, `"stocks"`) {
			t.Fatalf("%s prompt missing stocks schema", name)
		}
	}
}
