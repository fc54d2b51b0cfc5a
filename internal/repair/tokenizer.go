package repair

import (
	"regexp"
	"unicode/utf8"
)

// tokenPattern pairs a Kind with the compiled regex that recognizes it. The
// tokenizer tries patterns in slice order at the current cursor position and
// takes the first match — order, not length, encodes the disambiguation
// policy, and that order MUST be preserved:
// filesystem paths and URLs before COLON (else `C:\dir` or "http://x:1"
// fragment at the colon), date-shaped literals before NUMBER (else
// "2024-01-01" fragments at the hyphens as subtraction), quoted strings
// before NUMBER/BOOLEAN/NULL, and structural punctuation before the bare
// word catch-all.
type tokenPattern struct {
	kind Kind
	re   *regexp.Regexp
}

var tokenPatterns = []tokenPattern{
	// 1. Filesystem-like paths.
	{STRING, regexp.MustCompile(`^[A-Za-z]:\\[^\s,{}\[\]"']+`)},
	{STRING, regexp.MustCompile(`^/[^\s,{}\[\]"':]+(?:/[^\s,{}\[\]"':]+)*`)},
	// 2. Absolute URLs.
	{STRING, regexp.MustCompile(`^https?://[^\s,{}\[\]"']+`)},
	// 3. Date-shaped literals (no two of these shapes match the same
	// prefix, so their order within this band does not matter).
	{DATE, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\b`)},
	{DATE, regexp.MustCompile(`^\d{2}-\d{2}-\d{4}\b`)},
	{DATE, regexp.MustCompile(`^\d{3}-\d{3}-\d{4}\b`)},
	{DATE, regexp.MustCompile(`^\d{3}-\d{4}\b`)},
	// 4. Double-quoted strings with backslash escapes.
	{STRING, regexp.MustCompile(`^"(?:\\.|[^"\\])*"`)},
	// 5. Single-quoted strings.
	{STRING, regexp.MustCompile(`^'(?:\\.|[^'\\])*'`)},
	// 6. Signed decimal / scientific numbers.
	{NUMBER, regexp.MustCompile(`^-?(?:0|[1-9]\d*)(?:\.\d+)?(?:[eE][+-]?\d+)?`)},
	// 7. Boolean words (case-insensitive, raw form preserved).
	{BOOLEAN, regexp.MustCompile(`(?i)^(?:true|false|si|no|yes|on|off)\b`)},
	// 8. Null words (case-insensitive).
	{NULL, regexp.MustCompile(`(?i)^(?:null|none|nil)\b`)},
	// 9. Structural punctuation.
	{LBRACE, regexp.MustCompile(`^\{`)},
	{RBRACE, regexp.MustCompile(`^\}`)},
	{LBRACKET, regexp.MustCompile(`^\[`)},
	{RBRACKET, regexp.MustCompile(`^\]`)},
	{LPAREN, regexp.MustCompile(`^\(`)},
	{RPAREN, regexp.MustCompile(`^\)`)},
	{COLON, regexp.MustCompile(`^:`)},
	{ASSIGN, regexp.MustCompile(`^=`)},
	{COMMA, regexp.MustCompile(`^,`)},
	// 10. Bare identifiers: letter/underscore (incl. Latin-1 accented
	// range), continuing with word chars or hyphen.
	{BARE_WORD, regexp.MustCompile(`^[A-Za-z_\x{00C0}-\x{00FF}][A-Za-z0-9_\-\x{00C0}-\x{00FF}]*`)},
}

var whitespaceRE = regexp.MustCompile(`^[ \t\f\v\n]+`)

// Tokenize converts pre-normalized text into a TokenStream. It never fails:
// any character that matches nothing becomes an UNKNOWN token so higher
// layers can decide what to do with it.
func Tokenize(text string) TokenStream {
	var stream TokenStream
	pos := 0
	line, col := 1, 1

	advance := func(n string) {
		for _, r := range n {
			if r == '\n' {
				line++
				col = 1
			} else {
				col++
			}
		}
		pos += len(n)
	}

	for pos < len(text) {
		rest := text[pos:]

		if ws := whitespaceRE.FindString(rest); ws != "" {
			advance(ws)
			continue
		}

		matched := false
		for _, p := range tokenPatterns {
			if m := p.re.FindString(rest); m != "" {
				stream = append(stream, NewToken(p.kind, m, pos, line, col))
				advance(m)
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		// 11. Any remaining character becomes UNKNOWN, one rune at a time.
		r, size := utf8.DecodeRuneInString(rest)
		raw := rest[:size]
		stream = append(stream, NewToken(UNKNOWN, raw, pos, line, col))
		advance(raw)
		_ = r
	}

	return stream
}
