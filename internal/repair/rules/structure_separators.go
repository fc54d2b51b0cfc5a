package rules

import "github.com/jsonrepair-go/jsonrepair/internal/repair"

// equalToColonApplies reports whether any ASSIGN ('=') token remains — such
// tokens only ever appear in "key=value" shorthand, never in valid JSON.
func equalToColonApplies(ctx *repair.Context) bool {
	for _, t := range ctx.Tokens {
		if t.Kind == repair.ASSIGN {
			return true
		}
	}
	return false
}

func equalToColonApply(ctx *repair.Context) {
	for i, t := range ctx.Tokens {
		if t.Kind == repair.ASSIGN {
			ctx.Tokens[i].Kind = repair.COLON
			ctx.Tokens[i].Value = ":"
		}
	}
}

// tupleToListApplies reports whether any parenthesis token remains — a
// parenthesized group is always intended as a JSON array once it reaches
// this stage.
func tupleToListApplies(ctx *repair.Context) bool {
	for _, t := range ctx.Tokens {
		if t.Kind == repair.LPAREN || t.Kind == repair.RPAREN {
			return true
		}
	}
	return false
}

func tupleToListApply(ctx *repair.Context) {
	for i, t := range ctx.Tokens {
		switch t.Kind {
		case repair.LPAREN:
			ctx.Tokens[i].Kind = repair.LBRACKET
			ctx.Tokens[i].Value = "["
		case repair.RPAREN:
			ctx.Tokens[i].Kind = repair.RBRACKET
			ctx.Tokens[i].Value = "]"
		}
	}
}

func init() {
	repair.DefaultRegistry.Register(repair.NewRule(
		"EqualToColon", 15, []string{"structure", "pre_repair"},
		equalToColonApplies, equalToColonApply,
	))
	repair.DefaultRegistry.Register(repair.NewRule(
		"TupleToList", 20, []string{"structure", "pre_repair"},
		tupleToListApplies, tupleToListApply,
	))
}
