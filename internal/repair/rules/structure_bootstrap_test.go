package rules

import (
	"testing"

	"github.com/jsonrepair-go/jsonrepair/internal/repair"
)

func ctxFor(text string) *repair.Context {
	ctx := repair.NewContext(text)
	ctx.Tokens = repair.Tokenize(text)
	return ctx
}

func TestStripPrefixGarbage(t *testing.T) {
	ctx := ctxFor(`garbage before {"a": 1}`)
	if !stripPrefixGarbageApplies(ctx) {
		t.Fatal("expected StripPrefixGarbage to apply")
	}
	stripPrefixGarbageApply(ctx)
	if ctx.Tokens[0].Kind != repair.LBRACE {
		t.Errorf("first token = %v, want LBRACE", ctx.Tokens[0].Kind)
	}
	if len(ctx.Report.DetectedIssues) != 1 {
		t.Errorf("expected one detected issue, got %v", ctx.Report.DetectedIssues)
	}
}

func TestStripPrefixGarbageNoOpWhenAlreadyLeading(t *testing.T) {
	ctx := ctxFor(`{"a": 1}`)
	if stripPrefixGarbageApplies(ctx) {
		t.Fatal("expected StripPrefixGarbage not to apply when already leading")
	}
}

func TestWrapRootObject(t *testing.T) {
	ctx := ctxFor(`"a": 1`)
	if !wrapRootObjectApplies(ctx) {
		t.Fatal("expected WrapRootObject to apply")
	}
	wrapRootObjectApply(ctx)
	if ctx.Tokens[0].Kind != repair.LBRACE || ctx.Tokens[len(ctx.Tokens)-1].Kind != repair.RBRACE {
		t.Errorf("expected tokens wrapped in braces, got %v", ctx.Tokens)
	}
}

func TestWrapRootObjectNoOpWithExistingRoot(t *testing.T) {
	ctx := ctxFor(`{"a": 1}`)
	if wrapRootObjectApplies(ctx) {
		t.Fatal("expected WrapRootObject not to apply when a root container exists")
	}
}

func TestRemoveTrailingCommas(t *testing.T) {
	ctx := ctxFor(`{"a": 1, "b": 2,}`)
	if !removeTrailingCommasApplies(ctx) {
		t.Fatal("expected RemoveTrailingCommas to apply")
	}
	removeTrailingCommasApply(ctx)
	for i, tok := range ctx.Tokens {
		if tok.Kind == repair.COMMA && i+1 < len(ctx.Tokens) && ctx.Tokens[i+1].IsCloser() {
			t.Fatalf("trailing comma survived at %d: %v", i, ctx.Tokens)
		}
	}
}
