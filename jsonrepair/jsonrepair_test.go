package jsonrepair

import (
	"errors"
	"testing"
)

func TestLoadsRepairsLaxByDefault(t *testing.T) {
	v, err := Loads(`{foo: 1}`)
	if err != nil {
		t.Fatalf("Loads returned error: %v", err)
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		t.Fatalf("Loads result = %T, want map[string]interface{}", v)
	}
	if m["foo"] != float64(1) {
		t.Errorf("m[foo] = %v, want 1", m["foo"])
	}
}

func TestLoadsStrictModeSurfacesFailure(t *testing.T) {
	_, err := Loads(`not json at all`, WithMode("strict"))
	if err == nil {
		t.Fatal("expected an error in strict mode for unrepairable input")
	}
	var repairErr *RepairFailedError
	if !errors.As(err, &repairErr) {
		t.Fatalf("error = %T, want *RepairFailedError", err)
	}
}

func TestLoadAutoFlowMinimalSkipsValueRules(t *testing.T) {
	report := Load(`{foo: admin}`, WithAutoFlow("minimal"), WithMode("strict"))
	// MinimalFlow only covers structure/pre_repair — it quotes the bare key
	// but never runs QuoteBareWords on the bare value admin, so strict
	// parsing should still fail on the unquoted identifier (forced to fail
	// loudly here via strict mode rather than silently falling back to "{}").
	if report.Success {
		t.Errorf("expected minimal auto_flow to leave admin unquoted, got success with %q", report.JSONText)
	}
}

func TestLoadDryRunSetsWasDryRun(t *testing.T) {
	report := Load(`{foo: 1}`, WithDryRun(true))
	if !report.WasDryRun {
		t.Error("expected WasDryRun to be true")
	}
}
