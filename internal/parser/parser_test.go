package parser

import (
	"math/big"
	"testing"

	"github.com/haiku-lang/go-haiku/pkg/value"
)

func firstEntry(t *testing.T, v value.Value) value.Value {
	t.Helper()
	entry, ok := v.TupleGet(value.IntegerFromInt64(0))
	if !ok {
		t.Fatalf("expected a positional entry 0, got %v", v)
	}
	return entry
}

func TestParseScalars(t *testing.T) {
	tests := []struct {
		input string
		want  value.Value
	}{
		{"abc", value.BytesFromString("abc")},
		{"#nil", value.Omega},
		{"#t", value.Boolean(true)},
		{"#f", value.Boolean(false)},
		{"-36893488147419103232", value.Integer(mustBig(t, "-36893488147419103232"))},
		{`"tschüss!"`, value.Unicode("tschüss!")},
		{"1/2", value.Rational(big.NewInt(1), big.NewInt(2))},
		{";comment\nabc", value.BytesFromString("abc")},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", tt.input, err)
		}
		entry := firstEntry(t, got)
		if !entry.Equal(tt.want) {
			t.Errorf("input %q: got %v, want %v", tt.input, entry, tt.want)
		}
	}
}

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("bad big.Int literal %q", s)
	}
	return n
}

func TestParseTupleWithNamedAndPositional(t *testing.T) {
	got, err := Parse(`[if [= 1 2] then:#nil else:"whew"]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tup := firstEntry(t, got)

	positional, named := tup.TuplePositionalAndNamed()
	if len(positional) != 2 {
		t.Fatalf("expected 2 positional entries, got %d", len(positional))
	}
	if !positional[0].Equal(value.BytesFromString("if")) {
		t.Errorf("positional[0] = %v, want Bytes(if)", positional[0])
	}
	if len(named) != 2 {
		t.Fatalf("expected 2 named entries, got %d", len(named))
	}

	thenVal, ok := tup.TupleGetNamed("then")
	if !ok || !thenVal.Equal(value.Omega) {
		t.Errorf("then: = %v, want Omega", thenVal)
	}
	elseVal, ok := tup.TupleGetNamed("else")
	if !ok || !elseVal.Equal(value.Unicode("whew")) {
		t.Errorf("else: = %v, want Unicode(whew)", elseVal)
	}
}

func TestParseSequence(t *testing.T) {
	got, err := Parse("(a b c)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seq := firstEntry(t, got)
	if !seq.IsSequence() || seq.SequenceLen() != 3 {
		t.Fatalf("expected a 3-element Sequence, got %v", seq)
	}
	want := []string{"a", "b", "c"}
	for i, e := range seq.SequenceElements() {
		if !e.Equal(value.BytesFromString(want[i])) {
			t.Errorf("element %d = %v, want Bytes(%s)", i, e, want[i])
		}
	}
}

func TestParseSequenceRejectsNamedKeys(t *testing.T) {
	if _, err := Parse("(a b:c)"); err == nil {
		t.Fatal("expected a SyntaxError for a named key inside a Sequence")
	}
}

func TestParseQuote(t *testing.T) {
	got, err := Parse("'x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wrapped := firstEntry(t, got)
	if wrapped.TupleLen() != 2 {
		t.Fatalf("expected a 2-entry tuple, got %v", wrapped)
	}
	name, _ := wrapped.TupleGet(value.IntegerFromInt64(0))
	if !name.Equal(value.BytesFromString("quote")) {
		t.Errorf("quote-wrap head = %v, want Bytes(quote)", name)
	}
	inner, _ := wrapped.TupleGet(value.IntegerFromInt64(1))
	if !inner.Equal(value.BytesFromString("x")) {
		t.Errorf("quote-wrap payload = %v, want Bytes(x)", inner)
	}
}

func TestParseStackedQuotes(t *testing.T) {
	got, err := Parse("',x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outer := firstEntry(t, got)
	head, _ := outer.TupleGet(value.IntegerFromInt64(0))
	if !head.Equal(value.BytesFromString("quote")) {
		t.Fatalf("outermost wrap = %v, want Bytes(quote)", head)
	}
	innerTuple, _ := outer.TupleGet(value.IntegerFromInt64(1))
	innerHead, _ := innerTuple.TupleGet(value.IntegerFromInt64(0))
	if !innerHead.Equal(value.BytesFromString("unquote")) {
		t.Fatalf("inner wrap = %v, want Bytes(unquote)", innerHead)
	}
}

func TestParseEvalData(t *testing.T) {
	got, err := Parse("{a:1}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	quoted := firstEntry(t, got)
	head, _ := quoted.TupleGet(value.IntegerFromInt64(0))
	if !head.Equal(value.BytesFromString("quote")) {
		t.Fatalf("eval-data head = %v, want Bytes(quote)", head)
	}
	body, _ := quoted.TupleGet(value.IntegerFromInt64(1))
	aUnquoted, ok := body.TupleGetNamed("a")
	if !ok {
		t.Fatalf("expected named key 'a' in eval-data body, got %v", body)
	}
	unquoteHead, _ := aUnquoted.TupleGet(value.IntegerFromInt64(0))
	if !unquoteHead.Equal(value.BytesFromString("unquote")) {
		t.Fatalf("eval-data entry head = %v, want Bytes(unquote)", unquoteHead)
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\n"} {
		got, err := Parse(in)
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", in, err)
		}
		if got.TupleLen() != 0 {
			t.Errorf("input %q: expected empty Tuple, got %v", in, got)
		}
	}
}

func TestParseDetachedColonIsSyntaxError(t *testing.T) {
	if _, err := Parse("[:a]"); err == nil {
		t.Fatal("expected a SyntaxError for a detached ':'")
	}
}

func TestParseUnclosedBracketIsSyntaxError(t *testing.T) {
	if _, err := Parse("[a"); err == nil {
		t.Fatal("expected a SyntaxError for an unclosed bracket")
	}
}

func TestParseExtraneousCloseIsSyntaxError(t *testing.T) {
	if _, err := Parse("]"); err == nil {
		t.Fatal("expected a SyntaxError for an extraneous close bracket")
	}
}

func TestParseRationalWithZeroDenominatorIsTokenError(t *testing.T) {
	for _, in := range []string{"3/0", "-5/00"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("input %q: expected a TokenError for a zero denominator, got none", in)
		}
	}
}
