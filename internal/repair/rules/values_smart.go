package rules

import (
	"regexp"
	"strings"

	"github.com/jsonrepair-go/jsonrepair/internal/repair"
)

var (
	stringHintRE = regexp.MustCompile(`(?i)(date|time|email|mail|phone|tel|zip|postal|url|uri|link|name|address|addr)`)
	numberHintRE = regexp.MustCompile(`(?i)(count|amount|score|lat|lon|long|qty|quantity|total|age|year|num|number)`)
	bareIntRE    = regexp.MustCompile(`^-?\d+$`)
)

// keyNameAt returns the bare key text at tokens[i], if tokens[i] is a key
// token (STRING or BARE_WORD) immediately followed by a COLON.
func keyNameAt(tokens repair.TokenStream, i int) (string, bool) {
	if i+1 >= len(tokens) || tokens[i+1].Kind != repair.COLON {
		return "", false
	}
	t := tokens[i]
	if t.Kind != repair.STRING && t.Kind != repair.BARE_WORD {
		return "", false
	}
	return unquote(t.Value), true
}

// smartTypingApplies reports whether a key:value pair's key name hints at a
// type the value's current token kind doesn't already match — smart typing
// by key name hint.
func smartTypingApplies(ctx *repair.Context) bool {
	tokens := ctx.Tokens
	for i := 0; i+2 < len(tokens); i++ {
		key, ok := keyNameAt(tokens, i)
		if !ok {
			continue
		}
		value := tokens[i+2]
		if stringHintRE.MatchString(key) && value.Kind != repair.STRING && value.IsValueKind() {
			return true
		}
		if numberHintRE.MatchString(key) && value.Kind == repair.BARE_WORD && bareIntRE.MatchString(value.Value) {
			return true
		}
	}
	return false
}

func smartTypingApply(ctx *repair.Context) {
	tokens := ctx.Tokens
	for i := 0; i+2 < len(tokens); i++ {
		key, ok := keyNameAt(tokens, i)
		if !ok {
			continue
		}
		valueIdx := i + 2
		value := tokens[valueIdx]

		if stringHintRE.MatchString(key) && value.Kind != repair.STRING && value.IsValueKind() {
			tokens[valueIdx].Kind = repair.STRING
			tokens[valueIdx].Value = quote(value.Value)
			continue
		}
		if numberHintRE.MatchString(key) && value.Kind == repair.BARE_WORD && bareIntRE.MatchString(value.Value) {
			tokens[valueIdx].Kind = repair.NUMBER
		}
	}
}

func init() {
	repair.DefaultRegistry.Register(repair.NewRule(
		"SmartTyping", 55, []string{"values", "smart"},
		smartTypingApplies, smartTypingApply,
	))
}
