// Package errors defines the repair engine's structured error type,
// adapted from the compiler's CompilerError: a phase-tagged, coded,
// severity-leveled error that can render as JSON or ANSI terminal text.
package errors

import (
	"encoding/json"
	"fmt"
)

// Severity represents the severity level of an error.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler for Severity.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Severity.
func (s *Severity) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}
	switch str {
	case "info":
		*s = Info
	case "warning":
		*s = Warning
	case "error":
		*s = Error
	case "fatal":
		*s = Fatal
	default:
		*s = Error
	}
	return nil
}

// TokenLocation pinpoints an error within the token stream being repaired.
type TokenLocation struct {
	Position int `json:"position"`
	Line     int `json:"line"`
	Column   int `json:"column"`
}

// ErrorContext carries the surrounding text an error occurred in.
type ErrorContext struct {
	SourceSnippet string `json:"source_snippet"`
	Highlight     string `json:"highlight"`
}

// FixSuggestion represents an auto-fix suggestion for a RepairError.
type FixSuggestion struct {
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

// RepairError is the repair engine's structured error, adapted from the
// teacher's CompilerError: Phase names a pipeline stage ("tokenize",
// "rule_engine", "finalize", "facade") instead of a compiler phase.
type RepairError struct {
	Phase      string
	Code       string
	Message    string
	Location   TokenLocation
	Severity   Severity
	Context    ErrorContext
	Suggestion *FixSuggestion
}

// Error implements the error interface.
func (e RepairError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s",
		e.Phase, e.Location.Line, e.Location.Column, e.Code, e.Message)
}

// New builds a RepairError.
func New(phase, code, message string, loc TokenLocation, severity Severity) RepairError {
	return RepairError{
		Phase:    phase,
		Code:     code,
		Message:  message,
		Location: loc,
		Severity: severity,
	}
}

// WithContext attaches surrounding-source context to the error.
func (e RepairError) WithContext(ctx ErrorContext) RepairError {
	e.Context = ctx
	return e
}

// WithSuggestion attaches a fix suggestion to the error.
func (e RepairError) WithSuggestion(s FixSuggestion) RepairError {
	e.Suggestion = &s
	return e
}

// MarshalJSON implements json.Marshaler.
func (e RepairError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Phase      string         `json:"phase"`
		Code       string         `json:"code"`
		Message    string         `json:"message"`
		Severity   Severity       `json:"severity"`
		Location   TokenLocation  `json:"location"`
		Context    ErrorContext   `json:"context"`
		Suggestion *FixSuggestion `json:"suggestion"`
	}{
		Phase:      e.Phase,
		Code:       e.Code,
		Message:    e.Message,
		Severity:   e.Severity,
		Location:   e.Location,
		Context:    e.Context,
		Suggestion: e.Suggestion,
	})
}

// IsError reports whether e is at Error or Fatal severity.
func (e RepairError) IsError() bool { return e.Severity == Error || e.Severity == Fatal }

// IsWarning reports whether e is at Warning severity.
func (e RepairError) IsWarning() bool { return e.Severity == Warning }
