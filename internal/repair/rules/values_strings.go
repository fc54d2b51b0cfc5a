package rules

import "github.com/jsonrepair-go/jsonrepair/internal/repair"

// bareWordIsValue reports whether tokens[i] is a BARE_WORD not immediately
// followed by a COLON or ASSIGN — i.e. it's standing as a value, not a key.
func bareWordIsValue(tokens repair.TokenStream, i int) bool {
	if tokens[i].Kind != repair.BARE_WORD {
		return false
	}
	if i+1 < len(tokens) {
		next := tokens[i+1].Kind
		if next == repair.COLON || next == repair.ASSIGN {
			return false
		}
	}
	return true
}

func quoteBareWordsApplies(ctx *repair.Context) bool {
	tokens := ctx.Tokens
	for i := range tokens {
		if bareWordIsValue(tokens, i) {
			return true
		}
	}
	return false
}

func quoteBareWordsApply(ctx *repair.Context) {
	tokens := ctx.Tokens
	for i, t := range tokens {
		if !bareWordIsValue(tokens, i) {
			continue
		}
		tokens[i].Kind = repair.STRING
		tokens[i].Value = quote(t.Value)
	}
}

// stringRunEnd returns the exclusive end of the maximal run of consecutive
// STRING tokens starting at i.
func stringRunEnd(tokens repair.TokenStream, i int) int {
	j := i
	for j < len(tokens) && tokens[j].Kind == repair.STRING {
		j++
	}
	return j
}

// mergeableRun returns the [i, end) run of STRING tokens starting at i that
// should be merged, trimming the run's last element when it's actually the
// start of the next key (tokens[end] is COLON) — a trailing STRING
// immediately before a COLON is a key, not a value fragment.
func mergeableRun(tokens repair.TokenStream, i int) (int, int) {
	end := stringRunEnd(tokens, i)
	if end < len(tokens) && tokens[end].Kind == repair.COLON && end > i {
		end--
	}
	return i, end
}

func mergeAdjacentStringsApplies(ctx *repair.Context) bool {
	tokens := ctx.Tokens
	for i := 0; i < len(tokens); {
		if tokens[i].Kind != repair.STRING {
			i++
			continue
		}
		start, end := mergeableRun(tokens, i)
		if end-start >= 2 {
			return true
		}
		i = stringRunEnd(tokens, i)
	}
	return false
}

func mergeAdjacentStringsApply(ctx *repair.Context) {
	tokens := ctx.Tokens
	out := make(repair.TokenStream, 0, len(tokens))
	for i := 0; i < len(tokens); {
		if tokens[i].Kind != repair.STRING {
			out = append(out, tokens[i])
			i++
			continue
		}
		start, end := mergeableRun(tokens, i)
		runEnd := stringRunEnd(tokens, i)
		if end-start >= 2 {
			parts := make([]string, 0, end-start)
			for _, t := range tokens[start:end] {
				parts = append(parts, unquote(t.Value))
			}
			merged := tokens[start]
			merged.Value = quote(joinWithSpaces(parts))
			out = append(out, merged)
			out = append(out, tokens[end:runEnd]...)
		} else {
			out = append(out, tokens[i:runEnd]...)
		}
		i = runEnd
	}
	ctx.Tokens = out
}

func joinWithSpaces(parts []string) string {
	out := parts[0]
	for _, p := range parts[1:] {
		out += " " + p
	}
	return out
}

func init() {
	repair.DefaultRegistry.Register(repair.NewRule(
		"QuoteBareWords", 60, []string{"values", "normalization"},
		quoteBareWordsApplies, quoteBareWordsApply,
	))
	repair.DefaultRegistry.Register(repair.NewRule(
		"MergeAdjacentStrings", 65, []string{"values", "normalization"},
		mergeAdjacentStringsApplies, mergeAdjacentStringsApply,
	))
}
