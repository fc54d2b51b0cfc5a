// Package rules is the repair engine's rule catalog: one file per concern
// band, registered into repair.DefaultRegistry at package init. Deliberately
// the largest package in the module — the rule catalog is the bulk of the
// repo.
package rules

import (
	"strings"

	"github.com/jsonrepair-go/jsonrepair/internal/repair"
	"github.com/jsonrepair-go/jsonrepair/internal/strcase"
)

// isKeyStringValue reports whether val is already a properly double-quoted
// string (used by rules that must be idempotent once a value is quoted).
func isKeyStringValue(val string) bool {
	return len(val) >= 2 && strings.HasPrefix(val, `"`) && strings.HasSuffix(val, `"`)
}

// quote wraps raw in double quotes, escaping any internal double quotes.
func quote(raw string) string {
	escaped := strings.ReplaceAll(raw, `"`, `\"`)
	return `"` + escaped + `"`
}

// unquote strips one layer of surrounding single or double quotes, if
// present.
func unquote(val string) string {
	if len(val) >= 2 {
		if (strings.HasPrefix(val, `"`) && strings.HasSuffix(val, `"`)) ||
			(strings.HasPrefix(val, "'") && strings.HasSuffix(val, "'")) {
			return val[1 : len(val)-1]
		}
	}
	return val
}

// toSnakeCase joins words into one snake_case identifier — used by
// MergeCompoundKeys to fuse a multi-word key run into one key.
func toSnakeCase(words []string) string {
	return strcase.JoinWords(words)
}

// startsKeyRun reports whether the tokens starting at i form a run of
// BARE_WORD/STRING tokens that terminates at a COLON — i.e. the start of
// the next key. Returns the index of the key run's terminating COLON, or -1
// if tokens[i:] is not a key run.
func startsKeyRun(tokens repair.TokenStream, i int) int {
	if i >= len(tokens) {
		return -1
	}
	j := i
	sawWord := false
	for j < len(tokens) {
		switch tokens[j].Kind {
		case repair.BARE_WORD, repair.STRING:
			sawWord = true
			j++
		case repair.COLON:
			if sawWord {
				return j
			}
			return -1
		default:
			return -1
		}
	}
	return -1
}
