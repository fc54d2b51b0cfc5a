package rules

import (
	"testing"

	"github.com/jsonrepair-go/jsonrepair/internal/repair"
)

func TestQuoteBareWords(t *testing.T) {
	ctx := ctxFor(`{"status": active}`)
	if !quoteBareWordsApplies(ctx) {
		t.Fatal("expected QuoteBareWords to apply")
	}
	quoteBareWordsApply(ctx)
	value := ctx.Tokens[3]
	if value.Kind != repair.STRING || value.Value != `"active"` {
		t.Errorf("got %v %q, want STRING %q", value.Kind, value.Value, `"active"`)
	}
}

func TestQuoteBareWordsSkipsKeys(t *testing.T) {
	ctx := ctxFor(`{status: "active"}`)
	if quoteBareWordsApplies(ctx) {
		t.Fatal("expected QuoteBareWords not to fire on a bare key (followed by COLON)")
	}
}

func TestMergeAdjacentStrings(t *testing.T) {
	ctx := ctxFor(`{"greeting": "hello" "world"}`)
	if !mergeAdjacentStringsApplies(ctx) {
		t.Fatal("expected MergeAdjacentStrings to apply")
	}
	mergeAdjacentStringsApply(ctx)
	value := ctx.Tokens[3]
	if value.Value != `"hello world"` {
		t.Errorf("merged value = %q, want %q", value.Value, `"hello world"`)
	}
}

func TestMergeAdjacentStringsStopsBeforeNextKey(t *testing.T) {
	ctx := ctxFor(`{"a": "x", "b": "y"}`)
	if mergeAdjacentStringsApplies(ctx) {
		t.Fatal("expected MergeAdjacentStrings not to merge across separate key:value pairs")
	}
}
