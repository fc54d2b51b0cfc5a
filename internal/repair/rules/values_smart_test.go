package rules

import (
	"testing"

	"github.com/jsonrepair-go/jsonrepair/internal/repair"
)

func TestSmartTypingQuotesHintedStringKey(t *testing.T) {
	ctx := ctxFor(`{"email": 12345}`)
	if !smartTypingApplies(ctx) {
		t.Fatal("expected SmartTyping to apply for an email-hinted numeric value")
	}
	smartTypingApply(ctx)
	value := ctx.Tokens[3]
	if value.Kind != repair.STRING {
		t.Errorf("value kind = %v, want STRING", value.Kind)
	}
}

func TestSmartTypingCoercesHintedNumberKey(t *testing.T) {
	ctx := ctxFor(`{count: "42"}`)
	ctx.Tokens[3].Kind = repair.BARE_WORD
	ctx.Tokens[3].Value = "42"
	if !smartTypingApplies(ctx) {
		t.Fatal("expected SmartTyping to apply for a count-hinted bare numeric value")
	}
	smartTypingApply(ctx)
	if ctx.Tokens[3].Kind != repair.NUMBER {
		t.Errorf("value kind = %v, want NUMBER", ctx.Tokens[3].Kind)
	}
}

func TestSmartTypingNoOpWithoutHint(t *testing.T) {
	ctx := ctxFor(`{"widgets": 5}`)
	if smartTypingApplies(ctx) {
		t.Fatal("expected SmartTyping not to apply without a key hint")
	}
}
