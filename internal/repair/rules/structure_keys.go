package rules

import "github.com/jsonrepair-go/jsonrepair/internal/repair"

// bareWordRunEnd returns the exclusive end index of the maximal run of
// consecutive BARE_WORD tokens starting at i.
func bareWordRunEnd(tokens repair.TokenStream, i int) int {
	j := i
	for j < len(tokens) && tokens[j].Kind == repair.BARE_WORD {
		j++
	}
	return j
}

// mergeCompoundKeysApplies reports whether a run of 2+ consecutive
// BARE_WORD tokens terminates in a COLON — e.g. "user name:" — which is a
// single multi-word key split by the tokenizer, not two separate tokens.
func mergeCompoundKeysApplies(ctx *repair.Context) bool {
	tokens := ctx.Tokens
	for i := 0; i < len(tokens); {
		end := bareWordRunEnd(tokens, i)
		if end-i >= 2 && end < len(tokens) && tokens[end].Kind == repair.COLON {
			return true
		}
		if end > i {
			i = end
		} else {
			i++
		}
	}
	return false
}

func mergeCompoundKeysApply(ctx *repair.Context) {
	tokens := ctx.Tokens
	out := make(repair.TokenStream, 0, len(tokens))
	for i := 0; i < len(tokens); {
		end := bareWordRunEnd(tokens, i)
		if end-i >= 2 && end < len(tokens) && tokens[end].Kind == repair.COLON {
			words := make([]string, 0, end-i)
			for _, t := range tokens[i:end] {
				words = append(words, t.RawValue)
			}
			merged := tokens[i]
			merged.Value = toSnakeCase(words)
			merged.RawValue = merged.Value
			out = append(out, merged)
			i = end
			continue
		}
		out = append(out, tokens[i])
		i++
	}
	ctx.Tokens = out
}

// keyNeedsQuoting reports whether tokens[i] is an unquoted key: a BARE_WORD,
// or a STRING whose raw value isn't properly double-quoted, directly
// followed by a COLON.
func keyNeedsQuoting(tokens repair.TokenStream, i int) bool {
	if i+1 >= len(tokens) || tokens[i+1].Kind != repair.COLON {
		return false
	}
	t := tokens[i]
	switch t.Kind {
	case repair.BARE_WORD:
		return true
	case repair.STRING:
		return !isKeyStringValue(t.Value)
	default:
		return false
	}
}

func quoteKeysApplies(ctx *repair.Context) bool {
	tokens := ctx.Tokens
	for i := range tokens {
		if keyNeedsQuoting(tokens, i) {
			return true
		}
	}
	return false
}

func quoteKeysApply(ctx *repair.Context) {
	tokens := ctx.Tokens
	for i, t := range tokens {
		if !keyNeedsQuoting(tokens, i) {
			continue
		}
		tokens[i].Kind = repair.STRING
		tokens[i].Value = quote(unquote(t.Value))
	}
}

func init() {
	repair.DefaultRegistry.Register(repair.NewRule(
		"MergeCompoundKeys", 25, []string{"structure", "normalization"},
		mergeCompoundKeysApplies, mergeCompoundKeysApply,
	))
	repair.DefaultRegistry.Register(repair.NewRule(
		"QuoteKeys", 35, []string{"structure", "normalization"},
		quoteKeysApplies, quoteKeysApply,
	))
}
