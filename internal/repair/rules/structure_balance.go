package rules

import "github.com/jsonrepair-go/jsonrepair/internal/repair"

// unmatchedOpeners walks tokens with a stack of expected closer kinds,
// popping on a matching closer and ignoring a mismatched or orphan one
// (such closers are left in the stream as they are). What remains on the
// stack are the closer kinds of openers that never closed, oldest first.
func unmatchedOpeners(tokens repair.TokenStream) []repair.Kind {
	var stack []repair.Kind
	for _, t := range tokens {
		switch t.Kind {
		case repair.LBRACE:
			stack = append(stack, repair.RBRACE)
		case repair.LBRACKET:
			stack = append(stack, repair.RBRACKET)
		case repair.RBRACE, repair.RBRACKET:
			if len(stack) > 0 && stack[len(stack)-1] == t.Kind {
				stack = stack[:len(stack)-1]
			}
		}
	}
	return stack
}

func balanceBracketsApplies(ctx *repair.Context) bool {
	return len(unmatchedOpeners(ctx.Tokens)) > 0
}

func balanceBracketsApply(ctx *repair.Context) {
	missing := unmatchedOpeners(ctx.Tokens)
	out := append(repair.TokenStream{}, ctx.Tokens...)
	for i := len(missing) - 1; i >= 0; i-- {
		value := "}"
		if missing[i] == repair.RBRACKET {
			value = "]"
		}
		out = append(out, repair.NewToken(missing[i], value, 0, 0, 0))
	}
	ctx.Tokens = out
	ctx.Report.AddIssue("appended missing closing bracket(s)")
}

func init() {
	repair.DefaultRegistry.Register(repair.NewRule(
		"BalanceBrackets", 95, []string{"structure", "cleanup"},
		balanceBracketsApplies, balanceBracketsApply,
	))
}
