package repair

import "testing"

func TestTokenizeKinds(t *testing.T) {
	tests := []struct {
		input    string
		expected []Kind
	}{
		{`{}`, []Kind{LBRACE, RBRACE}},
		{`["a", 1, true, null]`, []Kind{LBRACKET, STRING, COMMA, NUMBER, COMMA, BOOLEAN, COMMA, NULL, RBRACKET}},
		{`key: value`, []Kind{BARE_WORD, COLON, BARE_WORD}},
		{`key=value`, []Kind{BARE_WORD, ASSIGN, BARE_WORD}},
		{`-3.5e10`, []Kind{NUMBER}},
		{`2024-01-05`, []Kind{DATE}},
		{`/usr/local/bin`, []Kind{STRING}},
		{`https://example.com/x`, []Kind{STRING}},
		{`'single'`, []Kind{STRING}},
	}

	for _, tt := range tests {
		tokens := Tokenize(tt.input)
		if len(tokens) != len(tt.expected) {
			t.Fatalf("Tokenize(%q): got %d tokens %v, want %d", tt.input, len(tokens), tokens, len(tt.expected))
		}
		for i, k := range tt.expected {
			if tokens[i].Kind != k {
				t.Errorf("Tokenize(%q)[%d] = %v, want %v", tt.input, i, tokens[i].Kind, k)
			}
		}
	}
}

func TestTokenizeDateBeforeNumber(t *testing.T) {
	tokens := Tokenize(`2024-01-05`)
	if len(tokens) != 1 || tokens[0].Kind != DATE {
		t.Fatalf("expected a single DATE token, got %v", tokens)
	}
}

func TestTokenizeUnknownFallback(t *testing.T) {
	tokens := Tokenize("\x01")
	if len(tokens) != 1 || tokens[0].Kind != UNKNOWN {
		t.Fatalf("expected a single UNKNOWN token, got %v", tokens)
	}
}

func TestTokenizeWhitespaceSkipped(t *testing.T) {
	tokens := Tokenize("  {  }  ")
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens ignoring whitespace, got %d: %v", len(tokens), tokens)
	}
}

func TestTokenizePositionsAdvance(t *testing.T) {
	tokens := Tokenize("a: 1")
	if tokens[0].Position != 0 {
		t.Errorf("first token position = %d, want 0", tokens[0].Position)
	}
	if tokens[1].Position != 1 {
		t.Errorf("colon position = %d, want 1", tokens[1].Position)
	}
}
