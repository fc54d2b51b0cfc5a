// Package diffutil builds short diagnostic-only diff previews, in the style
// of a line-diff formatter minus its terminal coloring, which belongs to
// the CLI layer, not a diagnostic string.
package diffutil

import (
	"fmt"
	"strings"
)

const maxPreviewLen = 200

// Preview returns a unified-diff-shaped preview of the change from before to
// after, truncated to at most 200 characters. It is diagnostic only — never
// parsed back, never applied as a patch.
func Preview(before, after string) string {
	if before == after {
		return ""
	}

	beforeLines := strings.Split(before, "\n")
	afterLines := strings.Split(after, "\n")

	var b strings.Builder
	maxLines := len(beforeLines)
	if len(afterLines) > maxLines {
		maxLines = len(afterLines)
	}

	for i := 0; i < maxLines; i++ {
		var o, n string
		if i < len(beforeLines) {
			o = beforeLines[i]
		}
		if i < len(afterLines) {
			n = afterLines[i]
		}
		if o == n {
			continue
		}
		if o != "" {
			fmt.Fprintf(&b, "-%s\n", o)
		}
		if n != "" {
			fmt.Fprintf(&b, "+%s\n", n)
		}
		if b.Len() > maxPreviewLen {
			break
		}
	}

	out := b.String()
	out = strings.TrimSuffix(out, "\n")
	if len(out) > maxPreviewLen {
		return out[:maxPreviewLen-3] + "..."
	}
	return out
}
