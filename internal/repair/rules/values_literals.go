package rules

import (
	"regexp"
	"strings"

	"github.com/jsonrepair-go/jsonrepair/internal/repair"
)

var leadingZeroRE = regexp.MustCompile(`^0\d+$`)

// leadingZeroIdentifierApplies reports whether any NUMBER token carries a
// disallowed leading zero (e.g. "0123"), which JSON's number grammar
// rejects but which commonly shows up as zip codes or account numbers.
func leadingZeroIdentifierApplies(ctx *repair.Context) bool {
	for _, t := range ctx.Tokens {
		if t.Kind == repair.NUMBER && leadingZeroRE.MatchString(t.Value) {
			return true
		}
	}
	return false
}

func leadingZeroIdentifierApply(ctx *repair.Context) {
	for i, t := range ctx.Tokens {
		if t.Kind == repair.NUMBER && leadingZeroRE.MatchString(t.Value) {
			ctx.Tokens[i].Kind = repair.STRING
			ctx.Tokens[i].Value = quote(t.Value)
		}
	}
}

var dateShapeRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$|^\d{2}-\d{2}-\d{4}$`)

// dateLiteralToStringApplies is a safety net for date-shaped literals that
// reach this stage tagged NUMBER rather than DATE — e.g. produced by an
// earlier rule's splice rather than the tokenizer itself.
func dateLiteralToStringApplies(ctx *repair.Context) bool {
	for _, t := range ctx.Tokens {
		if t.Kind == repair.NUMBER && dateShapeRE.MatchString(t.Value) {
			return true
		}
	}
	return false
}

func dateLiteralToStringApply(ctx *repair.Context) {
	for i, t := range ctx.Tokens {
		if t.Kind == repair.NUMBER && dateShapeRE.MatchString(t.Value) {
			ctx.Tokens[i].Kind = repair.STRING
			ctx.Tokens[i].Value = quote(t.Value)
		}
	}
}

var (
	trueWords  = map[string]bool{"true": true, "si": true, "yes": true, "on": true}
	falseWords = map[string]bool{"false": true, "no": true, "off": true}
)

// normalizeBooleansApplies reports whether any BOOLEAN token's raw word
// differs from canonical lowercase "true"/"false" (spoken-language or
// localized affirmatives/negatives the tokenizer already classified as
// boolean-shaped).
func normalizeBooleansApplies(ctx *repair.Context) bool {
	for _, t := range ctx.Tokens {
		if t.Kind == repair.BOOLEAN && t.Value != "true" && t.Value != "false" {
			return true
		}
	}
	return false
}

func normalizeBooleansApply(ctx *repair.Context) {
	for i, t := range ctx.Tokens {
		if t.Kind != repair.BOOLEAN {
			continue
		}
		word := strings.ToLower(t.Value)
		switch {
		case trueWords[word]:
			ctx.Tokens[i].Value = "true"
		case falseWords[word]:
			ctx.Tokens[i].Value = "false"
		}
	}
}

func init() {
	repair.DefaultRegistry.Register(repair.NewRule(
		"LeadingZeroIdentifier", 45, []string{"values"},
		leadingZeroIdentifierApplies, leadingZeroIdentifierApply,
	))
	repair.DefaultRegistry.Register(repair.NewRule(
		"DateLiteralToString", 46, []string{"values"},
		dateLiteralToStringApplies, dateLiteralToStringApply,
	))
	repair.DefaultRegistry.Register(repair.NewRule(
		"NormalizeBooleans", 50, []string{"values", "normalization"},
		normalizeBooleansApplies, normalizeBooleansApply,
	))
}
