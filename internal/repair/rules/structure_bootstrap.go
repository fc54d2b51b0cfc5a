package rules

import "github.com/jsonrepair-go/jsonrepair/internal/repair"

// stripPrefixGarbageApplies finds the first index that plausibly begins real
// structure — a root opener or the start of a "key:" pair — and reports
// whether anything precedes it.
func stripPrefixGarbageApplies(ctx *repair.Context) bool {
	return firstStructuralIndex(ctx.Tokens) > 0
}

func firstStructuralIndex(tokens repair.TokenStream) int {
	for i, t := range tokens {
		if t.Kind == repair.LBRACE || t.Kind == repair.LBRACKET {
			return i
		}
		if startsKeyRun(tokens, i) >= 0 {
			return i
		}
	}
	return -1
}

func stripPrefixGarbageApply(ctx *repair.Context) {
	idx := firstStructuralIndex(ctx.Tokens)
	if idx <= 0 {
		return
	}
	ctx.Report.AddIssue("dropped leading non-JSON prefix")
	ctx.Tokens = append(repair.TokenStream{}, ctx.Tokens[idx:]...)
}

// wrapRootObjectApplies reports whether the stream lacks a root container
// but contains at least one key:value pair worth wrapping.
func wrapRootObjectApplies(ctx *repair.Context) bool {
	tokens := ctx.Tokens
	if len(tokens) == 0 {
		return false
	}
	if tokens[0].Kind == repair.LBRACE || tokens[0].Kind == repair.LBRACKET {
		return false
	}
	for _, t := range tokens {
		if t.Kind == repair.COLON {
			return true
		}
	}
	return false
}

func wrapRootObjectApply(ctx *repair.Context) {
	wrapped := make(repair.TokenStream, 0, len(ctx.Tokens)+2)
	wrapped = append(wrapped, repair.NewToken(repair.LBRACE, "{", 0, 0, 0))
	wrapped = append(wrapped, ctx.Tokens...)
	wrapped = append(wrapped, repair.NewToken(repair.RBRACE, "}", 0, 0, 0))
	ctx.Tokens = wrapped
}

// removeTrailingCommasApplies reports whether any COMMA directly precedes a
// closing brace or bracket.
func removeTrailingCommasApplies(ctx *repair.Context) bool {
	tokens := ctx.Tokens
	for i := 0; i < len(tokens)-1; i++ {
		if tokens[i].Kind == repair.COMMA && tokens[i+1].IsCloser() {
			return true
		}
	}
	return false
}

func removeTrailingCommasApply(ctx *repair.Context) {
	tokens := ctx.Tokens
	out := make(repair.TokenStream, 0, len(tokens))
	for i, t := range tokens {
		if t.Kind == repair.COMMA && i+1 < len(tokens) && tokens[i+1].IsCloser() {
			continue
		}
		out = append(out, t)
	}
	ctx.Tokens = out
}

func init() {
	repair.DefaultRegistry.Register(repair.NewRule(
		"StripPrefixGarbage", 5, []string{"structure", "cleanup"},
		stripPrefixGarbageApplies, stripPrefixGarbageApply,
	))
	repair.DefaultRegistry.Register(repair.NewRule(
		"RemoveTrailingCommas", 8, []string{"structure", "cleanup"},
		removeTrailingCommasApplies, removeTrailingCommasApply,
	))
	repair.DefaultRegistry.Register(repair.NewRule(
		"WrapRootObject", 9, []string{"structure", "cleanup"},
		wrapRootObjectApplies, wrapRootObjectApply,
	))
}
