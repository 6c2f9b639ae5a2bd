package lexer

import (
	"testing"

	"github.com/haiku-lang/go-haiku/internal/token"
)

func TestNextTokenBasics(t *testing.T) {
	input := `[+ 2 3 4]`

	tests := []struct {
		kind token.Kind
		text string
	}{
		{token.TupleOpen, "["},
		{token.LiteralBytes, "+"},
		{token.LiteralInteger, "2"},
		{token.LiteralInteger, "3"},
		{token.LiteralInteger, "4"},
		{token.TupleClose, "]"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("tests[%d]: unexpected error: %v", i, err)
		}
		if tok.Kind != tt.kind {
			t.Fatalf("tests[%d] - kind wrong. expected=%v, got=%v (text=%q)", i, tt.kind, tok.Kind, tok.Text)
		}
		if tok.Text != tt.text {
			t.Fatalf("tests[%d] - text wrong. expected=%q, got=%q", i, tt.text, tok.Text)
		}
	}
}

func TestSignDisambiguation(t *testing.T) {
	tests := []struct {
		input string
		kinds []token.Kind
	}{
		{"-5", []token.Kind{token.LiteralInteger, token.EOF}},
		{"- 5", []token.Kind{token.LiteralBytes, token.LiteralInteger, token.EOF}},
		{"+abc", []token.Kind{token.LiteralBytes, token.EOF}},
	}

	for _, tt := range tests {
		l := New(tt.input)
		for i, want := range tt.kinds {
			tok, err := l.NextToken()
			if err != nil {
				t.Fatalf("input %q: unexpected error: %v", tt.input, err)
			}
			if tok.Kind != want {
				t.Fatalf("input %q token %d: expected=%v got=%v", tt.input, i, want, tok.Kind)
			}
		}
	}
}

func TestRationalRequiresNoWhitespace(t *testing.T) {
	l := New("1/2")
	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Kind != token.LiteralRational || tok.Text != "1/2" {
		t.Fatalf("expected rational 1/2, got %v %q", tok.Kind, tok.Text)
	}

	l2 := New("1 / 2")
	wantKinds := []token.Kind{token.LiteralInteger, token.LiteralBytes, token.LiteralInteger, token.EOF}
	for i, want := range wantKinds {
		tok, err := l2.NextToken()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.Kind != want {
			t.Fatalf("token %d: expected=%v got=%v", i, want, tok.Kind)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	l := New(`"a\"b\\c"`)
	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Kind != token.LiteralUnicode {
		t.Fatalf("expected LiteralUnicode, got %v", tok.Kind)
	}
	if tok.Text != `a"b\c` {
		t.Fatalf("expected %q, got %q", `a"b\c`, tok.Text)
	}
}

func TestBracketFamilyMismatchIsTokenError(t *testing.T) {
	l := New("[a)")
	// consume '[' and 'a'
	if _, err := l.NextToken(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := l.NextToken(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := l.NextToken(); err == nil {
		t.Fatalf("expected a TokenError on mismatched close bracket")
	}
}

func TestUnmatchedCloseIsTokenError(t *testing.T) {
	l := New(")")
	if _, err := l.NextToken(); err == nil {
		t.Fatalf("expected a TokenError on unmatched close bracket")
	}
}

func TestLineComment(t *testing.T) {
	l := New(";comment\nabc")
	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Kind != token.LiteralBytes || tok.Text != "abc" {
		t.Fatalf("expected Bytes(abc), got %v %q", tok.Kind, tok.Text)
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"abc", true},
		{"+", true},
		{"-5", false},
		{"-abc", true},
		{"a1", true},
		{"1a", false},
	}
	for _, tt := range tests {
		if got := IsIdentifier(tt.in); got != tt.want {
			t.Errorf("IsIdentifier(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
