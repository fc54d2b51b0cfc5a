// Package jsonrepair is the module's top-level façade: a minimal
// Loads/Load surface wiring a default StandardFlow engine over
// internal/repair so callers that just want "give me a repaired
// JSON value back" never have to touch the registry/engine/flow plumbing
// directly.
package jsonrepair

import (
	"github.com/jsonrepair-go/jsonrepair/internal/repair"
	_ "github.com/jsonrepair-go/jsonrepair/internal/repair/rules"
)

// Result mirrors repair.RepairReport's public shape for façade callers that
// don't want an internal/ import in their own go.mod's visible surface.
type Result = repair.RepairReport

var defaultEngine = repair.New(repair.DefaultRegistry)

// Option configures a single Loads/Load call away from the package
// defaults (auto_flows="standard", mode="lax").
type Option func(*settings)

type settings struct {
	mode     repair.Mode
	autoFlow string
	flow     *repair.Flow
	dryRun   bool
}

// WithMode selects the fallback policy used when strict parsing still fails
// after every rule has run: "lax" (default) forces an empty object back;
// "strict" surfaces the decode error via RepairFailedError.
func WithMode(mode string) Option {
	return func(s *settings) { s.mode = repair.Mode(mode) }
}

// WithAutoFlow selects one of the three preset flows by name ("minimal",
// "standard", "aggressive") instead of the default "standard". Ignored if
// WithFlow is also given.
func WithAutoFlow(name string) Option {
	return func(s *settings) { s.autoFlow = name }
}

// WithFlow runs a caller-built custom flow instead of a preset auto_flow.
func WithFlow(f *repair.Flow) Option {
	return func(s *settings) { s.flow = f }
}

// WithDryRun marks the parse as a dry run. Rules still rewrite the token
// stream and the returned value reflects those rewrites; the report records
// at most one modification entry per rule and sets WasDryRun.
func WithDryRun(dryRun bool) Option {
	return func(s *settings) { s.dryRun = dryRun }
}

func buildEngine(opts []Option) (*repair.Repair, bool) {
	if len(opts) == 0 {
		return defaultEngine, false
	}

	s := &settings{mode: repair.ModeLax, autoFlow: "standard"}
	for _, opt := range opts {
		opt(s)
	}

	ropts := []repair.Option{repair.WithMode(s.mode)}
	if s.flow != nil {
		ropts = append(ropts, repair.WithFlow(s.flow))
	} else {
		ropts = append(ropts, repair.WithAutoFlow(s.autoFlow))
	}
	return repair.New(repair.DefaultRegistry, ropts...), s.dryRun
}

// Loads repairs text and returns the decoded JSON value, discarding the
// full RepairReport — the "just parse it" entry point for callers who only
// want a value back.
func Loads(text string, opts ...Option) (interface{}, error) {
	engine, dryRun := buildEngine(opts)
	report := engine.Parse(text, dryRun)
	if !report.Success {
		return nil, &RepairFailedError{Report: report}
	}
	return report.ParsedObject, nil
}

// Load behaves like Loads but returns the full RepairReport, for callers
// that want the quality score, applied rules, and diagnostics alongside
// the parsed value.
func Load(text string, opts ...Option) *Result {
	engine, dryRun := buildEngine(opts)
	return engine.Parse(text, dryRun)
}

// RepairFailedError wraps a RepairReport whose Status indicates the input
// could not be turned into valid JSON even after every rule ran.
type RepairFailedError struct {
	Report *Result
}

func (e *RepairFailedError) Error() string {
	if e.Report == nil {
		return "jsonrepair: repair failed"
	}
	return "jsonrepair: repair failed: " + string(e.Report.Status)
}
