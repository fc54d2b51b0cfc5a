package rules

import (
	"testing"

	"github.com/jsonrepair-go/jsonrepair/internal/repair"
)

func TestBalanceBrackets(t *testing.T) {
	ctx := ctxFor(`{"a": [1, 2`)
	if !balanceBracketsApplies(ctx) {
		t.Fatal("expected BalanceBrackets to apply")
	}
	balanceBracketsApply(ctx)

	last2 := ctx.Tokens[len(ctx.Tokens)-2:]
	if last2[0].Kind != repair.RBRACKET || last2[1].Kind != repair.RBRACE {
		t.Errorf("closers = %v %v, want RBRACKET then RBRACE", last2[0].Kind, last2[1].Kind)
	}
	if len(ctx.Report.DetectedIssues) != 1 {
		t.Errorf("expected one detected issue, got %v", ctx.Report.DetectedIssues)
	}
}

func TestBalanceBracketsNoOpWhenBalanced(t *testing.T) {
	ctx := ctxFor(`{"a": [1, 2]}`)
	if balanceBracketsApplies(ctx) {
		t.Fatal("expected BalanceBrackets not to apply on already-balanced input")
	}
}
