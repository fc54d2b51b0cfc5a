package rules

import (
	"testing"

	"github.com/jsonrepair-go/jsonrepair/internal/repair"
)

func TestMergeCompoundKeys(t *testing.T) {
	ctx := ctxFor(`{first name: "Ada"}`)
	if !mergeCompoundKeysApplies(ctx) {
		t.Fatal("expected MergeCompoundKeys to apply")
	}
	mergeCompoundKeysApply(ctx)
	if ctx.Tokens[1].Value != "first_name" {
		t.Errorf("merged key = %q, want %q", ctx.Tokens[1].Value, "first_name")
	}
}

func TestMergeCompoundKeysNoOpSingleWord(t *testing.T) {
	ctx := ctxFor(`{name: "Ada"}`)
	if mergeCompoundKeysApplies(ctx) {
		t.Fatal("expected MergeCompoundKeys not to apply for a single-word key")
	}
}

func TestQuoteKeys(t *testing.T) {
	ctx := ctxFor(`{name: "Ada"}`)
	if !quoteKeysApplies(ctx) {
		t.Fatal("expected QuoteKeys to apply")
	}
	quoteKeysApply(ctx)
	if ctx.Tokens[1].Kind != repair.STRING || ctx.Tokens[1].Value != `"name"` {
		t.Errorf("quoted key = %v %q, want STRING %q", ctx.Tokens[1].Kind, ctx.Tokens[1].Value, `"name"`)
	}
}

func TestQuoteKeysNoOpWhenAlreadyQuoted(t *testing.T) {
	ctx := ctxFor(`{"name": "Ada"}`)
	if quoteKeysApplies(ctx) {
		t.Fatal("expected QuoteKeys not to apply when the key is already quoted")
	}
}
