package repair

import "testing"

func testRegistry() *RuleRegistry {
	reg := NewRuleRegistry()
	reg.RegisterFunc("quote-keys", 10, []string{"structure"},
		func(ctx *Context) bool {
			for _, t := range ctx.Tokens {
				if t.Kind == BARE_WORD {
					return true
				}
			}
			return false
		},
		func(ctx *Context) {
			for i, t := range ctx.Tokens {
				if t.Kind == BARE_WORD {
					ctx.Tokens[i].Kind = STRING
					ctx.Tokens[i].Value = `"` + t.Value + `"`
				}
			}
		},
	)
	return reg
}

func TestParseAlreadyStrictJSON(t *testing.T) {
	r := New(testRegistry())
	report := r.Parse(`{"a": 1}`)
	if !report.Success || report.Status != SuccessStrictJSON {
		t.Fatalf("got success=%v status=%v, want SuccessStrictJSON", report.Success, report.Status)
	}
	if len(report.AppliedRules) != 0 {
		t.Errorf("expected no rules applied on already-strict input, got %v", report.AppliedRules)
	}
}

func TestParseEmptyInput(t *testing.T) {
	r := New(testRegistry())
	report := r.Parse("   \n\t  ")
	if !report.Success || report.Status != SuccessEmptyInput {
		t.Fatalf("got success=%v status=%v, want SuccessEmptyInput", report.Success, report.Status)
	}
}

func TestParseNoStructuralTokens(t *testing.T) {
	r := New(testRegistry())
	report := r.Parse("just some prose")
	if report.Success || report.Status != FailureNoStructure {
		t.Fatalf("got success=%v status=%v, want FailureNoStructure", report.Success, report.Status)
	}
}

func TestParseRepairsBareKey(t *testing.T) {
	reg := testRegistry()
	r := New(reg, WithFlow(NewFlowFromTags("bare-keys", NewRuleEngine(reg), "structure")))
	report := r.Parse(`{foo: 1}`)
	if !report.Success {
		t.Fatalf("expected success, got errors=%v", report.Errors)
	}
	if report.JSONText != `{"foo":1}` {
		t.Errorf("JSONText = %q, want %q", report.JSONText, `{"foo":1}`)
	}
	if len(report.AppliedRules) != 1 || report.AppliedRules[0] != "quote-keys" {
		t.Errorf("AppliedRules = %v, want [quote-keys]", report.AppliedRules)
	}
}

func TestParseLaxModeForcesEmptyOnUnrecoverableInput(t *testing.T) {
	r := New(testRegistry(), WithMode(ModeLax))
	report := r.Parse(`{unterminated`)
	if !report.Success || report.Status != SuccessWithWarnings {
		t.Fatalf("got success=%v status=%v, want SuccessWithWarnings", report.Success, report.Status)
	}
	if report.JSONText != "{}" {
		t.Errorf("JSONText = %q, want {}", report.JSONText)
	}
	found := false
	for _, issue := range report.DetectedIssues {
		if issue == forcedEmptyFallbackIssue {
			found = true
		}
	}
	if !found {
		t.Errorf("expected DetectedIssues to contain %q, got %v", forcedEmptyFallbackIssue, report.DetectedIssues)
	}
}

func TestParseStrictModeSurfacesDecodeError(t *testing.T) {
	r := New(testRegistry(), WithMode(ModeStrict))
	report := r.Parse(`{unterminated`)
	// quote-keys fires on the BARE_WORD "unterminated", so this is the
	// rules-fired-but-still-failed case: PARTIAL_REPAIR, not
	// FAILED_UNRECOVERABLE.
	if report.Success || report.Status != PartialRepair {
		t.Fatalf("got success=%v status=%v, want PartialRepair", report.Success, report.Status)
	}
	if len(report.Errors) == 0 {
		t.Error("expected a decode error recorded in Errors")
	}
	if len(report.AppliedRules) == 0 {
		t.Error("expected quote-keys to have fired")
	}
}

func TestParseStrictModeNoRulesFiredIsUnrecoverable(t *testing.T) {
	reg := NewRuleRegistry()
	r := New(reg, WithMode(ModeStrict))
	report := r.Parse(`{unterminated`)
	if report.Success || report.Status != FailedUnrecoverable {
		t.Fatalf("got success=%v status=%v, want FailedUnrecoverable", report.Success, report.Status)
	}
	if len(report.AppliedRules) != 0 {
		t.Errorf("expected no rules to have fired against an empty registry, got %v", report.AppliedRules)
	}
}

func TestParseFallbackAppendsClosingBrace(t *testing.T) {
	r := New(testRegistry())
	report := r.Parse(`{"a": 1`)
	if !report.Success {
		t.Fatalf("expected success via closing-brace fallback, got errors=%v", report.Errors)
	}
	if report.JSONText != `{"a":1}` {
		t.Errorf("JSONText = %q, want %q", report.JSONText, `{"a":1}`)
	}
}

func TestWithMaxIterationsIgnoresNonPositive(t *testing.T) {
	r := New(testRegistry(), WithMaxIterations(0))
	if r.MaxIterations != 10 {
		t.Errorf("MaxIterations = %d, want default 10 when given 0", r.MaxIterations)
	}
}

func TestWithAutoFlowUnknownNameIgnored(t *testing.T) {
	reg := testRegistry()
	r := New(reg, WithAutoFlow("bogus"))
	// An unrecognized name adds nothing, so New falls back to its default
	// StandardFlow rather than running with zero user flows.
	if len(r.Flows) != 1 || r.Flows[0].Name != "standard" {
		t.Errorf("expected New to fall back to the default StandardFlow, got %v", r.Flows)
	}
}
