package repair

import "encoding/json"

// Mode selects the orchestrator's behavior when strict parsing still fails
// after every rule has run.
type Mode string

const (
	// ModeStrict surfaces the decode error: the report fails with
	// PARTIAL_REPAIR if any rule fired, FAILED_UNRECOVERABLE otherwise.
	ModeStrict Mode = "strict"
	// ModeLax forces an empty object as a last resort so callers always get
	// back parseable JSON, recording that it happened as a detected issue.
	ModeLax Mode = "lax"
)

// forcedEmptyFallbackIssue marks a report whose JSONText is a forced "{}"
// rather than a genuine repair of the input, distinguishing a forced
// SUCCESS_WITH_WARNINGS from a genuine-repair SUCCESS_WITH_WARNINGS without
// needing a dedicated status.
const forcedEmptyFallbackIssue = "forced-empty-fallback"

// Repair is the parse engine handle: a registry-bound RuleEngine plus the
// ordered list of flows the repair loop runs each iteration.
type Repair struct {
	Registry      *RuleRegistry
	Engine        *RuleEngine
	Flows         []*Flow
	MaxIterations int
	DryRun        bool
	Debug         bool
	Mode          Mode
	Logger        Logger
}

// Option configures a Repair at construction time.
type Option func(*Repair)

// WithLogger sets the structured logger every rule firing and orchestrator
// decision is reported through.
func WithLogger(l Logger) Option {
	return func(r *Repair) {
		if l != nil {
			r.Logger = l
		}
	}
}

// WithDryRun runs every parse in preview mode unless overridden per-call.
func WithDryRun(dryRun bool) Option {
	return func(r *Repair) { r.DryRun = dryRun }
}

// WithDebug sets the Repair's Debug flag. The flag does not change logging:
// the RuleEngine calls Logger.Debugw for every rule firing regardless, and
// whether those lines appear depends on the Logger passed to WithLogger.
func WithDebug(debug bool) Option {
	return func(r *Repair) { r.Debug = debug }
}

// WithMode selects the fallback policy used when strict parsing still fails
// after every rule has run.
func WithMode(mode Mode) Option {
	return func(r *Repair) { r.Mode = mode }
}

// WithMaxIterations bounds the outer RepairLoop fixed-point, guaranteeing
// termination.
func WithMaxIterations(n int) Option {
	return func(r *Repair) {
		if n > 0 {
			r.MaxIterations = n
		}
	}
}

// WithAutoFlow appends one of the four preset flows by name: "minimal",
// "standard", "aggressive". Unknown names are ignored.
func WithAutoFlow(name string) Option {
	return func(r *Repair) {
		switch name {
		case "minimal":
			r.Flows = append(r.Flows, MinimalFlow(r.Engine))
		case "standard":
			r.Flows = append(r.Flows, StandardFlow(r.Engine))
		case "aggressive":
			r.Flows = append(r.Flows, AggressiveFlow(r.Engine))
		}
	}
}

// WithFlow appends a caller-built custom flow to the repair loop.
func WithFlow(f *Flow) Option {
	return func(r *Repair) {
		r.Flows = append(r.Flows, f)
	}
}

// New builds a Repair bound to registry (typically DefaultRegistry), with
// StandardFlow as the default user flow if no WithAutoFlow/WithFlow option
// supplies one.
func New(registry *RuleRegistry, opts ...Option) *Repair {
	engine := NewRuleEngine(registry)
	r := &Repair{
		Registry:      registry,
		Engine:        engine,
		MaxIterations: 10,
		Mode:          ModeLax,
		Logger:        NopLogger,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.Engine.Logger = r.Logger
	if len(r.Flows) == 0 {
		r.Flows = []*Flow{StandardFlow(r.Engine)}
	}
	return r
}

// AddFlow appends f to the repair loop's user flows.
func (r *Repair) AddFlow(f *Flow) {
	r.Flows = append(r.Flows, f)
}

// Parse runs the full PreNormalize -> Tokenize -> RepairLoop -> Finalize ->
// strict-parse -> QualityEvaluator pipeline over text. dryRun, if given,
// overrides the Repair's configured DryRun for this call only.
func (r *Repair) Parse(text string, dryRun ...bool) *RepairReport {
	effectiveDryRun := r.DryRun
	if len(dryRun) > 0 {
		effectiveDryRun = dryRun[0]
	}

	report := NewRepairReport()
	report.WasDryRun = effectiveDryRun

	normalized := PreNormalize(text)
	if normalized == "" {
		report.Success = true
		report.Status = SuccessEmptyInput
		report.JSONText = ""
		return report
	}

	tokens := Tokenize(normalized)
	if !hasStructuralToken(tokens) {
		report.Success = false
		report.Status = FailureNoStructure
		report.Errors = append(report.Errors, "no structural tokens found in input")
		return report
	}

	ctx := NewContext(normalized)
	ctx.Tokens = tokens
	ctx.Report = report
	ctx.MaxIterations = r.MaxIterations
	ctx.DryRun = effectiveDryRun

	r.runLoop(ctx)
	report.Iterations = ctx.CurrentIteration

	jsonText := Finalize(ctx.Tokens)
	parsed, forcedEmpty, err := r.parseWithFallback(jsonText, &jsonText)
	if err != nil {
		report.Success = false
		if len(report.AppliedRules) == 0 {
			report.Status = FailedUnrecoverable
		} else {
			report.Status = PartialRepair
		}
		report.JSONText = jsonText
		report.Errors = append(report.Errors, err.Error())
		r.Logger.Warnw("parse failed after repair loop", "report_id", report.ReportID, "status", report.Status, "applied_rules", len(report.AppliedRules))
		return report
	}

	report.JSONText = jsonText
	report.ParsedObject = parsed
	if forcedEmpty {
		report.AddIssue(forcedEmptyFallbackIssue)
	}

	quality, issues := EvaluateQuality(ctx.Tokens)
	report.QualityScore = quality
	report.DetectedIssues = append(report.DetectedIssues, issues...)

	report.Success = true
	report.Status = r.classifyStatus(report, forcedEmpty)
	r.Logger.Infow("parse complete", "report_id", report.ReportID, "status", report.Status, "iterations", report.Iterations, "quality_score", report.QualityScore)
	return report
}

func hasStructuralToken(tokens TokenStream) bool {
	for _, t := range tokens {
		switch t.Kind {
		case LBRACE, LBRACKET, COLON, ASSIGN:
			return true
		}
	}
	return false
}

// runLoop runs BootstrapFlow followed by every user flow, once per
// iteration, until a full iteration makes no change or MaxIterations is
// reached.
func (r *Repair) runLoop(ctx *Context) {
	bootstrap := BootstrapFlow(r.Engine)

	changed := false
	for ctx.CurrentIteration = 0; ctx.CurrentIteration < ctx.MaxIterations; ctx.CurrentIteration++ {
		changed = bootstrap.Run(ctx)
		for _, flow := range r.Flows {
			if flow.Run(ctx) {
				changed = true
			}
		}
		if !changed {
			ctx.CurrentIteration++
			return
		}
	}
	if changed {
		r.Logger.Warnw("repair loop hit max iterations without reaching a fixed point",
			"report_id", ctx.Report.ReportID, "max_iterations", ctx.MaxIterations)
	}
}

// parseWithFallback attempts a strict JSON decode of jsonText. If that
// fails it tries appending a single closing brace (the cheap, common case
// of one dangling unclosed object slipping through the repair loop). If
// that still fails and the Repair is in lax mode, it forces an empty object
// so callers always get back something parseable; in strict mode the
// original decode error is returned.
func (r *Repair) parseWithFallback(jsonText string, out *string) (interface{}, bool, error) {
	var parsed interface{}
	if err := json.Unmarshal([]byte(jsonText), &parsed); err == nil {
		return parsed, false, nil
	}

	patched := jsonText + "}"
	if err := json.Unmarshal([]byte(patched), &parsed); err == nil {
		*out = patched
		return parsed, false, nil
	}

	firstErr := json.Unmarshal([]byte(jsonText), &parsed)
	if r.Mode == ModeStrict {
		return nil, false, firstErr
	}

	r.Logger.Warnw("forcing empty object after exhausting repair fallback", "decode_error", firstErr.Error())
	*out = "{}"
	return map[string]interface{}{}, true, nil
}

// classifyStatus assigns the final RepairStatus once parsing has already
// succeeded: a forced-empty fallback is always SUCCESS_WITH_WARNINGS
// (flagged via the forcedEmptyFallbackIssue marker rather than a distinct
// status); otherwise a perfect quality score yields SUCCESS_STRICT_JSON,
// whether or not any rule fired, and anything less is a warning.
func (r *Repair) classifyStatus(report *RepairReport, forcedEmpty bool) RepairStatus {
	if forcedEmpty {
		return SuccessWithWarnings
	}
	if report.QualityScore == 1.0 {
		return SuccessStrictJSON
	}
	return SuccessWithWarnings
}
