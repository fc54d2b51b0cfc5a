// Package strcase normalizes bare identifier words into snake_case keys.
package strcase

import (
	"strings"
	"unicode"
)

// ToSnakeCase lowercases s, inserting an underscore before an uppercase
// letter that follows a lowercase one or precedes a lowercase one — so
// "HTTPRequest" becomes "http_request" rather than "h_t_t_p_request".
func ToSnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)

	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 {
				prev := runes[i-1]
				if unicode.IsLower(prev) {
					b.WriteRune('_')
				} else if i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
					b.WriteRune('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// JoinWords snake_cases each word independently and joins them with
// underscores — used to fuse a multi-word bare-key run like "first Name"
// into "first_name".
func JoinWords(words []string) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = ToSnakeCase(w)
	}
	return strings.Join(parts, "_")
}
