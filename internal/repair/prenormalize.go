package repair

import "strings"

// PreNormalize normalizes line endings to "\n" and trims outer whitespace,
// the first pipeline stage.
func PreNormalize(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.TrimSpace(text)
}
