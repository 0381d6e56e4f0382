package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"MarketPing/internal/domain/models"
	"MarketPing/pkg/util"
)

// Mode selects the report template and the generator operation behind it.
type Mode string

const (
	ModeOpen     Mode = "open"
	ModeIntraday Mode = "intraday"
	ModeClosing  Mode = "closing"
	ModeAdhoc    Mode = "adhoc"
	ModePreOpen  Mode = "pre_open"
	ModeNight    Mode = "night"
	ModeWeekend  Mode = "weekend"
)

// The delivery transport caps bodies at 1600 characters; stay under it.
const maxBodyRunes = 1590

const defaultDisclaimer = "For educational purposes only. DYOR."

const headerTimeFormat = "02 Jan 2006, 03:04 PM MST"

// Formatter renders a report into a bounded chat message. It is total
// over partially-populated reports: absent fields render as placeholders.
type Formatter struct {
	maxLen int
}

func NewFormatter() *Formatter {
	return &Formatter{maxLen: maxBodyRunes}
}

// Format renders the report for the given mode. label is only used by
// scheduled modes (open/intraday/closing); now must be localized already.
func (f *Formatter) Format(r *models.Report, mode Mode, label string, now time.Time) string {
	if r == nil {
		r = &models.Report{}
	}

	var lines []string
	switch mode {
	case ModeAdhoc:
		lines = f.adhoc(r, now)
	case ModePreOpen:
		lines = f.preOpen(r, now)
	case ModeNight:
		lines = f.night(r, now)
	case ModeWeekend:
		lines = f.weekend(r, now)
	default:
		lines = f.scheduled(r, label, mode, now)
	}

	return util.TruncateRunes(strings.Join(lines, "\n"), f.maxLen)
}

func (f *Formatter) scheduled(r *models.Report, label string, mode Mode, now time.Time) []string {
	lines := header(label, r, now)
	if mode == ModeClosing && r.DaySummary != "" {
		lines = append(lines, "📋  "+r.DaySummary)
	}
	if r.Theme != "" {
		lines = append(lines, "📰  "+r.Theme)
	}

	switch mode {
	case ModeOpen:
		lines = append(lines, divider("TOP PICKS – TODAY")...)
	case ModeClosing:
		lines = append(lines, divider("SWING TRADE PICKS")...)
	default:
		lines = append(lines, divider("LIVE INTRADAY PICKS")...)
	}

	for i, s := range capPicks(r.Stocks, 3) {
		lines = append(lines, stockLines(i+1, s, mode != ModeIntraday, "Intraday")...)
	}

	var extras []string
	if mode == ModeClosing && r.NextDayOutlook != "" {
		extras = append(extras, "\n🔭  *Tomorrow* : "+r.NextDayOutlook)
	}
	if r.GlobalCues != "" {
		extras = append(extras, "🌐  *Global*   : "+r.GlobalCues)
	}

	return append(lines, footer(r, extras)...)
}

func (f *Formatter) adhoc(r *models.Report, now time.Time) []string {
	lines := header("📲  INSTANT PICKS", r, now)
	lines = append(lines, divider("BEST PICKS RIGHT NOW")...)
	for i, s := range capPicks(r.Stocks, 3) {
		lines = append(lines, stockLines(i+1, s, true, "Intraday")...)
	}
	return append(lines, footer(r, nil)...)
}

func (f *Formatter) preOpen(r *models.Report, now time.Time) []string {
	lines := header("🌄  PRE-MARKET WATCHLIST", r, now)
	lines = append(lines, "⏰  Gift Nifty : "+strOr(r.NiftyOpenEstimate, "N/A"))
	lines = append(lines, divider("STOCKS TO WATCH TODAY")...)
	for i, s := range capPicks(r.Stocks, 3) {
		lines = append(lines, stockLines(i+1, s, true, "Intraday")...)
	}
	var extras []string
	if r.KeyEvents != "" {
		extras = append(extras, "\n📋  Key Events : "+r.KeyEvents)
	}
	return append(lines, footer(r, extras)...)
}

func (f *Formatter) night(r *models.Report, now time.Time) []string {
	lines := []string{
		"🌙  *TOMORROW'S WATCHLIST*",
		"📅  " + now.Format(headerTimeFormat),
		fmt.Sprintf("📊  Tomorrow's Outlook : %s %s", strOr(r.Sentiment, "N/A"), sentimentEmoji(r.Sentiment)),
		"📰  Theme : " + r.Theme,
	}
	lines = append(lines, divider("BUY TOMORROW – TOP PICKS")...)
	for i, s := range capPicks(r.Stocks, 4) {
		lines = append(lines,
			fmt.Sprintf("\n*%d. %s*  [%s]", i+1, strOr(s.Symbol, "?"), strOr(s.Exchange, "NSE")),
			"   🏷️  "+s.Sector,
			"   💡  "+s.Reason,
			fmt.Sprintf("   📈  Entry Tmr  : ₹%s – ₹%s", money(s.EntryLow), money(s.EntryHigh)),
			fmt.Sprintf("   🎯  Target     : ₹%s  (+%s%%)", money(s.Target), money(s.Upside)),
			"   🛑  SL         : ₹"+money(s.StopLoss),
			"   ⏱  Horizon    : "+strOr(s.HoldingPeriod, "2-3 days"),
		)
	}
	return append(lines,
		"",
		"🌐  *Global Cues*    : "+strOr(r.GlobalCues, "N/A"),
		"📋  *Key Events*     : "+strOr(r.KeyEvents, "N/A"),
		"📉  *Nifty Open Est* : "+strOr(r.NiftyOpenEstimate, "N/A"),
		"",
		"⏰  _Set price alerts at entry levels. Check pre-market at 9 AM._",
		"",
		"⚠️  "+strOr(r.Disclaimer, defaultDisclaimer),
	)
}

func (f *Formatter) weekend(r *models.Report, now time.Time) []string {
	lines := []string{
		"📅  *WEEKEND WATCHLIST*",
		"📅  " + now.Format(headerTimeFormat),
		fmt.Sprintf("📊  Next Week Outlook : %s %s", strOr(r.Sentiment, "N/A"), sentimentEmoji(r.Sentiment)),
	}
	lines = append(lines, divider("PICKS FOR NEXT WEEK")...)
	for i, s := range capPicks(r.Stocks, 4) {
		lines = append(lines, stockLines(i+1, s, true, "1 week")...)
	}
	return append(lines,
		"",
		"📋  *Key Events Next Week* : "+strOr(r.KeyEvents, "N/A"),
		"🌐  *Global Watch*         : "+strOr(r.GlobalCues, "N/A"),
		"",
		"⚠️  "+strOr(r.Disclaimer, defaultDisclaimer),
	)
}

func header(title string, r *models.Report, now time.Time) []string {
	return []string{
		"*" + title + "*",
		"📅  " + now.Format(headerTimeFormat),
		fmt.Sprintf("📊  Sentiment : %s %s", strOr(r.Sentiment, "N/A"), sentimentEmoji(r.Sentiment)),
		"📉  Nifty     : " + strOr(r.NiftyLevel, "N/A"),
	}
}

func footer(r *models.Report, extras []string) []string {
	var lines []string
	if len(r.SectorsToWatch) > 0 {
		lines = append(lines, "\n👀  *Watch* : "+strings.Join(r.SectorsToWatch, ", "))
	}
	if len(r.AvoidSectors) > 0 {
		lines = append(lines, "🚫  *Avoid* : "+strings.Join(r.AvoidSectors, ", "))
	}
	lines = append(lines, extras...)
	return append(lines, "", "⚠️  "+strOr(r.Disclaimer, defaultDisclaimer))
}

func stockLines(i int, s models.StockPick, showHold bool, defaultHold string) []string {
	lines := []string{
		fmt.Sprintf("\n*%d. %s*  [%s]", i, strOr(s.Symbol, "?"), strOr(s.Exchange, "NSE")),
		"   🏷️  " + s.Sector,
		"   💡  " + s.Reason,
		fmt.Sprintf("   📈  Entry  : ₹%s – ₹%s", money(s.EntryLow), money(s.EntryHigh)),
		fmt.Sprintf("   🎯  Target : ₹%s  (+%s%%)", money(s.Target), money(s.Upside)),
		"   🛑  SL     : ₹" + money(s.StopLoss),
		"   ⚖️   R:R    : " + strOr(s.RiskReward, "1:2"),
	}
	if showHold {
		lines = append(lines, "   ⏱  Hold   : "+strOr(s.HoldingPeriod, defaultHold))
	}
	return lines
}

func divider(title string) []string {
	return []string{"", "━━━━━━━━━━━━━━━━━━━━━━", "🎯  *" + title + "*", "━━━━━━━━━━━━━━━━━━━━━━"}
}

func sentimentEmoji(sentiment string) string {
	s := strings.ToLower(sentiment)
	switch {
	case strings.Contains(s, "bullish"):
		return "🟢"
	case strings.Contains(s, "bearish"):
		return "🔴"
	case strings.Contains(s, "neutral"):
		return "🟡"
	default:
		return "⚪"
	}
}

func capPicks(stocks []models.StockPick, n int) []models.StockPick {
	if len(stocks) > n {
		return stocks[:n]
	}
	return stocks
}

func strOr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func money(v *float64) string {
	if v == nil {
		return "?"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
