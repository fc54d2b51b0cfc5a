package rules

import (
	"testing"

	"github.com/jsonrepair-go/jsonrepair/internal/repair"
)

func TestAddMissingCommas(t *testing.T) {
	ctx := ctxFor(`{"a": 1 "b": 2}`)
	if !addMissingCommasApplies(ctx) {
		t.Fatal("expected AddMissingCommas to apply")
	}
	addMissingCommasApply(ctx)

	commas := 0
	for _, tok := range ctx.Tokens {
		if tok.Kind == repair.COMMA {
			commas++
		}
	}
	if commas != 1 {
		t.Errorf("expected exactly one inserted comma, got %d in %v", commas, ctx.Tokens)
	}
}

func TestAddMissingCommasNoOpWhenPresent(t *testing.T) {
	ctx := ctxFor(`{"a": 1, "b": 2}`)
	if addMissingCommasApplies(ctx) {
		t.Fatal("expected AddMissingCommas not to apply when commas already present")
	}
}
