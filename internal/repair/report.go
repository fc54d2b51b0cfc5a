package repair

import "github.com/google/uuid"

// RepairStatus classifies the outcome of a parse.
type RepairStatus string

const (
	SuccessStrictJSON    RepairStatus = "SUCCESS_STRICT_JSON"
	SuccessWithWarnings  RepairStatus = "SUCCESS_WITH_WARNINGS"
	SuccessEmptyInput    RepairStatus = "SUCCESS_EMPTY_INPUT"
	PartialRepair        RepairStatus = "PARTIAL_REPAIR"
	FailedUnrecoverable  RepairStatus = "FAILED_UNRECOVERABLE"
	FailureNoStructure   RepairStatus = "FAILURE_NO_STRUCTURE"
)

// Modification records one rule firing that changed the token stream.
type Modification struct {
	RuleName    string `json:"rule_name"`
	DiffPreview string `json:"diff_preview"`
}

// RepairReport accumulates across a single parse.
type RepairReport struct {
	// ReportID uniquely identifies this parse, stamped by NewRepairReport
	// the way runtime/metadata stamps extracted patterns with a uuid.
	ReportID string `json:"report_id"`

	Success       bool           `json:"success"`
	Status        RepairStatus   `json:"status"`
	JSONText      string         `json:"json_text"`
	ParsedObject  interface{}    `json:"parsed_object"`
	QualityScore  float64        `json:"quality_score"`
	Iterations    int            `json:"iterations"`
	AppliedRules  []string       `json:"applied_rules"`
	Modifications []Modification `json:"modifications"`
	DetectedIssues []string      `json:"detected_issues"`
	Errors        []string       `json:"errors"`
	WasDryRun     bool           `json:"was_dry_run"`

	appliedSet map[string]struct{}
}

// NewRepairReport returns a report stamped with a fresh ReportID.
func NewRepairReport() *RepairReport {
	return &RepairReport{
		ReportID:       uuid.NewString(),
		AppliedRules:   make([]string, 0),
		Modifications:  make([]Modification, 0),
		DetectedIssues: make([]string, 0),
		Errors:         make([]string, 0),
		appliedSet:     make(map[string]struct{}),
	}
}

// recordRule appends ruleName to AppliedRules, deduping while preserving
// first-application order.
func (r *RepairReport) recordRule(ruleName string) {
	if r.appliedSet == nil {
		r.appliedSet = make(map[string]struct{})
	}
	if _, seen := r.appliedSet[ruleName]; seen {
		return
	}
	r.appliedSet[ruleName] = struct{}{}
	r.AppliedRules = append(r.AppliedRules, ruleName)
}

// recordModification appends a diff entry. In dry-run mode the engine dedupes
// by rule name before calling this.
func (r *RepairReport) recordModification(ruleName, diffPreview string) {
	r.Modifications = append(r.Modifications, Modification{
		RuleName:    ruleName,
		DiffPreview: diffPreview,
	})
}

// hasModificationFor reports whether ruleName already has a recorded
// modification entry (used to dedupe dry-run logging).
func (r *RepairReport) hasModificationFor(ruleName string) bool {
	for _, m := range r.Modifications {
		if m.RuleName == ruleName {
			return true
		}
	}
	return false
}

func (r *RepairReport) addIssue(issue string) {
	r.DetectedIssues = append(r.DetectedIssues, issue)
}

// AddIssue appends issue to DetectedIssues. Exported so rules in the rules
// subpackage can surface diagnostics (e.g. "dropped leading prefix") without
// reaching into RepairReport's internal bookkeeping.
func (r *RepairReport) AddIssue(issue string) {
	r.addIssue(issue)
}
