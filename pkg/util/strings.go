package util

// TruncateRunes caps s at max runes, dropping trailing content. Safe for
// multi-byte text such as emoji-heavy message bodies.
func TruncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
