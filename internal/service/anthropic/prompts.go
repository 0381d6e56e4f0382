package anthropic

import "fmt"

const systemPrompt = `You are an expert Indian stock market analyst with deep knowledge of NSE and BSE.
You specialize in:
  • Technical analysis (RSI, MACD, Bollinger Bands, EMA, support/resistance)
  • Fundamental catalysts (earnings, FII/DII flows, news)
  • Sector rotation and market breadth analysis
  • Nifty 50, Nifty Bank, Midcap, Smallcap indices

RULES:
1. Always search for the LATEST real-time data before responding.
2. Use exact ₹ price levels based on current market prices.
3. Minimum Risk:Reward = 1:2 for every pick.
4. Each pick must have a clear catalyst (news/technical trigger).
5. Distinguish between NSE and BSE listings.
6. Consider F&O data (PCR, OI buildup) where relevant.
7. Respond ONLY in valid JSON as specified — no preamble, no markdown fences.`

// stockSchema describes the expected pick objects inside the JSON reply.
func stockSchema(n int, hold string) string {
	return fmt.Sprintf(`Array of exactly %d stock objects:
{
  "symbol": "NSE symbol (e.g. RELIANCE)",
  "exchange": "NSE or BSE",
  "sector": "sector name",
  "reason": "2-sentence catalyst + technical setup",
  "entry_low": number,
  "entry_high": number,
  "target": number,
  "stop_loss": number,
  "upside": number (percentage),
  "risk_reward": "1:2 or better",
  "holding_period": "%s"
}`, n, hold)
}

func marketOpenPrompt() string {
	return fmt.Sprintf(`Search for: current Nifty 50 levels, pre-market SGX Nifty, top NSE gainers/losers
pre-market, FII/DII data yesterday, major news today affecting Indian markets.

Return this JSON:
{
  "sentiment": "Bullish | Bearish | Neutral",
  "theme": "one-line market theme for today",
  "nifty_level": "current/expected Nifty 50 level",
  "nifty_support": "key support",
  "nifty_resistance": "key resistance",
  "nifty_open_estimate": "expected opening range",
  "stocks": %s,
  "sectors_to_watch": ["sector1", "sector2"],
  "avoid_sectors": ["sector1"],
  "global_cues": "US futures, Asian markets summary",
  "disclaimer": "Educational purposes only. Not SEBI registered. DYOR."
}`, stockSchema(3, "Intraday | 2-3 days"))
}

var intradayContext = map[int]string{
	10: "morning session (first hour complete). Look for opening range breakouts and gap fill trades.",
	11: "mid-morning. Momentum established. Look for trend continuation and sector leaders.",
	12: "approaching noon. Pre-lunch positioning. Watch for reversal signals.",
	13: "post-lunch. Institutional activity picks up. Look for accumulation patterns.",
	14: "afternoon into pre-close. F&O expiry awareness, last 1.5 hours. High-volume breakouts and strong momentum trades with tight stops.",
}

func intradayPrompt(hour int) string {
	context, ok := intradayContext[hour]
	if !ok {
		context = fmt.Sprintf("current %d:00 session.", hour)
	}
	return fmt.Sprintf(`It is currently %d:00 IST. Market context: %s

Search for: current Nifty 50 level, top NSE gainers/volume leaders right now,
intraday breakout stocks, MACD crossovers on 15-min charts, RSI extremes.

Return this JSON:
{
  "sentiment": "Bullish | Bearish | Neutral",
  "theme": "current intraday theme",
  "nifty_level": "current Nifty level",
  "nifty_support": "intraday support",
  "nifty_resistance": "intraday resistance",
  "stocks": %s,
  "sectors_to_watch": ["sector1", "sector2"],
  "avoid_sectors": [],
  "disclaimer": "Educational purposes only. Not SEBI registered. DYOR."
}`, hour, context, stockSchema(3, "Intraday only"))
}

func closingPrompt() string {
	return fmt.Sprintf(`Market is closing / just closed. Search for: Nifty 50 closing level,
today's top gainers/losers, stocks with high delivery volume (swing setups),
global cues for tomorrow (US futures, SGX Nifty).

Return this JSON:
{
  "sentiment": "Bullish | Bearish | Neutral",
  "day_summary": "2-sentence summary of today's session",
  "nifty_level": "closing level",
  "nifty_support": "key support",
  "nifty_resistance": "key resistance",
  "stocks": %s,
  "sectors_to_watch": ["sector1"],
  "avoid_sectors": [],
  "next_day_outlook": "tomorrow's expected direction with levels",
  "global_cues": "US markets, SGX Nifty, Asian outlook",
  "disclaimer": "Educational purposes only. Not SEBI registered. DYOR."
}`, stockSchema(3, "2-5 days"))
}

func adhocPrompt(hour int) string {
	return fmt.Sprintf(`User has requested instant picks at %d:00 IST during live market hours.
Search for: Nifty level RIGHT NOW, stocks moving more than 2%% today with volume surge,
technical breakouts on 15-min timeframe, high RSI momentum stocks.

Give the absolute BEST picks available at this exact moment.

Return this JSON:
{
  "sentiment": "Bullish | Bearish | Neutral",
  "theme": "what is driving the market right now",
  "nifty_level": "live Nifty level",
  "nifty_support": "nearest support",
  "nifty_resistance": "nearest resistance",
  "stocks": %s,
  "sectors_to_watch": ["sector1"],
  "avoid_sectors": [],
  "disclaimer": "Educational purposes only. Not SEBI registered. DYOR."
}`, hour, stockSchema(3, "Intraday | 2-3 days"))
}

func preOpenPrompt() string {
	return fmt.Sprintf(`It is before 9:15 AM IST. Market has not opened yet.
Search for: SGX Nifty / GIFT Nifty current level, US markets yesterday close,
Asian markets this morning, major overnight news for India,
FII activity yesterday, key stocks in news today.

Return this JSON:
{
  "sentiment": "Expected Bullish | Bearish | Neutral",
  "theme": "expected theme for today",
  "nifty_level": "yesterday's close",
  "nifty_open_estimate": "expected opening level based on Gift Nifty",
  "nifty_support": "key support for today",
  "nifty_resistance": "key resistance for today",
  "stocks": %s,
  "key_events": "important events today (earnings, RBI, global data)",
  "sectors_to_watch": ["sector1"],
  "avoid_sectors": [],
  "global_cues": "US close, SGX Nifty, Asian markets summary",
  "disclaimer": "Educational purposes only. Not SEBI registered. DYOR."
}`, stockSchema(3, "Intraday | 2-3 days"))
}

func nextDayPrompt() string {
	return fmt.Sprintf(`Market is closed for today. A user wants to know what to buy TOMORROW.
Search for: today's NSE closing data, top performing sectors today,
stocks near key technical breakout levels (52-week high, chart patterns),
tomorrow's economic calendar (India + US), FII/DII net activity today,
global futures tonight.

Identify 4 stocks with the best setup for TOMORROW's trading session.

Return this JSON:
{
  "sentiment": "Expected Bullish | Bearish | Neutral for tomorrow",
  "theme": "expected theme for tomorrow",
  "nifty_level": "today's closing level",
  "nifty_open_estimate": "expected Nifty opening range tomorrow",
  "stocks": %s,
  "key_events": "important events tomorrow (results, macro data, global)",
  "sectors_to_watch": ["sector1", "sector2"],
  "avoid_sectors": ["sector1"],
  "global_cues": "US markets tonight, Asian cues, currency",
  "disclaimer": "Educational purposes only. Not SEBI registered. DYOR."
}`, stockSchema(4, "2-5 days"))
}

func weekendPrompt() string {
	return fmt.Sprintf(`It is the weekend. Indian markets are closed. A user wants to plan for NEXT WEEK.
Search for: this week's Nifty performance summary, top sector performers this week,
stocks with strong weekly charts / breakout setups for next week,
next week's key events (earnings calendar, RBI, US Fed data, IPOs),
FII net buying/selling this week.

Identify 4 stocks with the best potential for next week.

Return this JSON:
{
  "sentiment": "Expected Bullish | Bearish | Neutral for next week",
  "theme": "expected theme for next week",
  "nifty_level": "this week's closing level",
  "nifty_support": "key weekly support",
  "nifty_resistance": "key weekly resistance",
  "stocks": %s,
  "key_events": "important events next week (earnings, macro, global)",
  "sectors_to_watch": ["sector1", "sector2"],
  "avoid_sectors": ["sector1"],
  "global_cues": "US market trend, global macro",
  "disclaimer": "Educational purposes only. Not SEBI registered. DYOR."
}`, stockSchema(4, "1-2 weeks"))
}
