package repair

// Context carries the mutable per-parse state threaded through every rule
// and flow. It exclusively owns the TokenStream and the RepairReport; no
// other stage aliases either.
type Context struct {
	// InitialText is the pre-normalized input, kept read-only for rules
	// that need source-span extraction.
	InitialText string

	Tokens TokenStream
	Report *RepairReport

	CurrentIteration int
	MaxIterations    int

	// Changed is cleared by the engine at the start of each RunRules call
	// and set when any rule in that call changed the stream.
	Changed bool

	DryRun bool
}

// NewContext builds a Context over pre-normalized text, ready for
// tokenization.
func NewContext(initialText string) *Context {
	return &Context{
		InitialText:   initialText,
		Report:        NewRepairReport(),
		MaxIterations: 10,
	}
}

// ConcatTokens is a convenience wrapper rules use to snapshot the stream for
// their own idempotence checks (e.g. "am I already a no-op here?").
func (c *Context) ConcatTokens() string {
	return c.Tokens.Concat()
}
