package rules

import "github.com/jsonrepair-go/jsonrepair/internal/repair"

// commaNeededAt reports whether a COMMA belongs between tokens[i] and
// tokens[i+1]: tokens[i] ends a value (or closes a container) and
// tokens[i+1] opens the next key, with nothing already separating them.
func commaNeededAt(tokens repair.TokenStream, i int) bool {
	if i+1 >= len(tokens) {
		return false
	}
	curr, next := tokens[i], tokens[i+1]
	if !(curr.IsValueKind() || curr.IsCloser()) {
		return false
	}
	return startsKeyRun(tokens, i+1) >= 0
}

func addMissingCommasApplies(ctx *repair.Context) bool {
	tokens := ctx.Tokens
	for i := range tokens {
		if commaNeededAt(tokens, i) {
			return true
		}
	}
	return false
}

func addMissingCommasApply(ctx *repair.Context) {
	tokens := ctx.Tokens
	out := make(repair.TokenStream, 0, len(tokens)+4)
	for i, t := range tokens {
		out = append(out, t)
		if commaNeededAt(tokens, i) {
			out = append(out, repair.NewToken(repair.COMMA, ",", t.Position, t.Line, t.Column))
		}
	}
	ctx.Tokens = out
}

func init() {
	repair.DefaultRegistry.Register(repair.NewRule(
		"AddMissingCommas", 28, []string{"structure"},
		addMissingCommasApplies, addMissingCommasApply,
	))
}
