package validators

import (
	"strings"
	"unicode/utf8"
)

// SanitizeString trims input, drops invalid UTF-8 and cuts it to at most
// maxLen bytes without splitting a rune.
func SanitizeString(input string, maxLen int) string {
	trimmed := strings.ToValidUTF8(strings.TrimSpace(input), "")
	if maxLen > 0 && len(trimmed) > maxLen {
		cut := maxLen
		for cut > 0 && !utf8.RuneStart(trimmed[cut]) {
			cut--
		}
		return trimmed[:cut]
	}
	return trimmed
}
