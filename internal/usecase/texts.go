package usecase

import (
	"fmt"

	"MarketPing/internal/market"
)

const onboardingText = `🎉 *Welcome to Stock Alerts!*

You're subscribed. Here's what you'll receive on trading days (IST):

🌅 9:20 AM — Market open picks
📊 10 AM – 2:30 PM — Intraday updates
🌆 3:00 PM — Closing wrap + swing picks

Reply anytime:
• *picks* — instant picks right now
• *stop* — unsubscribe
• *help* — this menu

⚠️ For educational purposes only. DYOR.`

const unsubscribeText = `👋 You've been unsubscribed.

No more alerts will be sent to this number.
Reply *start* anytime to subscribe again.`

const helpText = `ℹ️ *Commands*

• *start* — subscribe to alerts
• *stop* — unsubscribe
• *picks* (or any other message) — instant picks
• *help* — this menu

Scheduled alerts run 9:20 AM – 3:00 PM IST on trading days.`

// waitText is the immediate acknowledgement sent while an instant
// report is generated in the background.
func waitText(phase market.Phase) string {
	switch phase {
	case market.PhaseMarket:
		return "⏳ Analyzing the market right now... your picks will arrive shortly."
	case market.PhasePreOpen:
		return "⏳ Markets open at 9:15 AM. Preparing your pre-market watchlist..."
	case market.PhaseWeekend:
		return "⏳ Markets are closed for the weekend. Preparing next week's watchlist..."
	default:
		return "⏳ Markets are closed. Preparing tomorrow's watchlist..."
	}
}

func degradedText(err error) string {
	return fmt.Sprintf("⚠️ Could not generate picks right now.\nPlease retry in a moment.\n\n_%v_", err)
}
