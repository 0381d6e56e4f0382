package market

import "fmt"

// Slot is a fixed wall-clock point at which a scheduled report fires.
type Slot struct {
	Hour   int
	Minute int
	Label  string
}

// ID returns the slot identifier used for logs and the manual trigger API.
func (s Slot) ID() string {
	return fmt.Sprintf("%02d:%02d", s.Hour, s.Minute)
}

// Slots are the weekday alert times, ordered by time of day.
var Slots = []Slot{
	{9, 20, "🌅 MARKET OPEN"},
	{10, 0, "📊 10 AM UPDATE"},
	{11, 0, "📈 11 AM UPDATE"},
	{12, 0, "☀️ NOON UPDATE"},
	{13, 0, "🔆 1 PM UPDATE"},
	{14, 0, "🔥 2 PM UPDATE"},
	{14, 30, "⚡ 2:30 PM UPDATE"},
	{15, 0, "🌆 CLOSING UPDATE"},
}

// SlotLabel returns the display label for a slot time, with a generic
// fallback so an unknown time still renders a usable header.
func SlotLabel(hour, minute int) string {
	for _, s := range Slots {
		if s.Hour == hour && s.Minute == minute {
			return s.Label
		}
	}
	return fmt.Sprintf("📣 %02d:%02d UPDATE", hour, minute)
}

// triggerNames maps operator-facing trigger identifiers to fixed slots.
var triggerNames = map[string][2]int{
	"open":    {9, 20},
	"10am":    {10, 0},
	"11am":    {11, 0},
	"noon":    {12, 0},
	"1pm":     {13, 0},
	"2pm":     {14, 0},
	"230pm":   {14, 30},
	"closing": {15, 0},
}

// LookupTrigger resolves a manual-trigger identifier to its fixed slot.
// Phase-window identifiers (night, weekend) are not fixed slots and are
// handled by the caller.
func LookupTrigger(name string) (Slot, bool) {
	hm, ok := triggerNames[name]
	if !ok {
		return Slot{}, false
	}
	return Slot{Hour: hm[0], Minute: hm[1], Label: SlotLabel(hm[0], hm[1])}, true
}

// TriggerNames lists every accepted manual-trigger identifier.
func TriggerNames() []string {
	names := make([]string, 0, len(triggerNames)+2)
	for _, s := range Slots {
		for name, hm := range triggerNames {
			if hm[0] == s.Hour && hm[1] == s.Minute {
				names = append(names, name)
			}
		}
	}
	return append(names, "night", "weekend")
}
