package rules

import (
	"testing"

	"github.com/jsonrepair-go/jsonrepair/internal/repair"
)

func TestLeadingZeroIdentifier(t *testing.T) {
	ctx := ctxFor(`{"zip": 0123}`)
	if !leadingZeroIdentifierApplies(ctx) {
		t.Fatal("expected LeadingZeroIdentifier to apply")
	}
	leadingZeroIdentifierApply(ctx)
	value := ctx.Tokens[len(ctx.Tokens)-2]
	if value.Kind != repair.STRING || value.Value != `"0123"` {
		t.Errorf("got %v %q, want STRING %q", value.Kind, value.Value, `"0123"`)
	}
}

func TestLeadingZeroIdentifierNoOpOnNormalNumber(t *testing.T) {
	ctx := ctxFor(`{"age": 30}`)
	if leadingZeroIdentifierApplies(ctx) {
		t.Fatal("expected LeadingZeroIdentifier not to apply for a normal number")
	}
}

func TestNormalizeBooleans(t *testing.T) {
	ctx := ctxFor(`{"active": YES}`)
	if !normalizeBooleansApplies(ctx) {
		t.Fatal("expected NormalizeBooleans to apply")
	}
	normalizeBooleansApply(ctx)
	value := ctx.Tokens[len(ctx.Tokens)-2]
	if value.Value != "true" {
		t.Errorf("normalized boolean = %q, want %q", value.Value, "true")
	}
}

func TestNormalizeBooleansNoOpOnCanonical(t *testing.T) {
	ctx := ctxFor(`{"active": true}`)
	if normalizeBooleansApplies(ctx) {
		t.Fatal("expected NormalizeBooleans not to apply when already canonical")
	}
}
