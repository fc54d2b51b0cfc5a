package errors

// Error code bands, one per repair phase.
// R001-R099: tokenizer/structural
// R100-R199: rule engine
// R200-R299: finalize/strict-parse
// R300-R399: façade/strict-mode decode
const (
	ErrNoStructuralTokens = "R001"
	ErrEmptyAfterNormalize = "R002"
	ErrUnknownTokenRun    = "R010"

	ErrRuleLoopNonConvergent = "R100"
	ErrRulePanic             = "R101"

	ErrFinalizeDecodeFailed = "R200"
	ErrForcedEmptyFallback  = "R201"

	ErrStrictModeDecode = "R300"
)
